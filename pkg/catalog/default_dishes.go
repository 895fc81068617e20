package catalog

import "healthy-eats-backend/domain"

// DefaultDishes is the starter catalog written by the seeder on an empty database.
func DefaultDishes() []domain.Dish {
	return []domain.Dish{
		{
			Name:           "Grilled Salmon with Quinoa and Asparagus",
			PhotoReference: "grilled-salmon-quinoa.dim_800x600.jpg",
			HealthExplanation: "Rich in omega-3 fats that support heart health. Low in sodium for blood pressure " +
				"control and paired with a low glycemic whole grain for blood sugar balance.",
			Ingredients: []string{"salmon fillet", "quinoa", "asparagus", "olive oil", "lemon", "garlic", "fresh dill"},
			Instructions: []string{
				"Rinse the quinoa and simmer it in water for 15 minutes.",
				"Brush the salmon and asparagus with olive oil and minced garlic.",
				"Grill the salmon for 4 minutes per side and the asparagus until tender.",
				"Serve over quinoa with lemon and dill.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 520, Protein: 38, Carbohydrates: 35, Fats: 24, Sodium: 310},
		},
		{
			Name:           "Lentil and Spinach Stew",
			PhotoReference: "lentil-spinach-stew.dim_800x600.jpg",
			HealthExplanation: "Iron-rich lentils and spinach help with anemia, and the high fiber supports heart " +
				"health and steady blood sugar.",
			Ingredients: []string{"green lentils", "spinach", "carrots", "onion", "celery", "garlic", "cumin",
				"low-sodium vegetable broth", "olive oil"},
			Instructions: []string{
				"Soften the onion, carrots and celery in olive oil.",
				"Add garlic, cumin, lentils and broth and simmer for 25 minutes.",
				"Stir in the spinach until wilted.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 380, Protein: 22, Carbohydrates: 52, Fats: 9, Sodium: 290},
		},
		{
			Name:              "Mediterranean Chickpea Salad",
			PhotoReference:    "chickpea-salad.dim_800x600.jpg",
			HealthExplanation: "Fiber and plant protein with heart-healthy olive oil, following a Mediterranean pattern.",
			Ingredients: []string{"chickpeas", "cucumber", "tomatoes", "red onion", "parsley", "olive oil",
				"lemon juice", "feta cheese"},
			Instructions: []string{
				"Chop the vegetables and parsley.",
				"Toss with chickpeas, olive oil and lemon juice.",
				"Crumble the feta over the top.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 410, Protein: 15, Carbohydrates: 40, Fats: 21, Sodium: 480},
		},
		{
			Name:           "Turkey Vegetable Stir-Fry with Brown Rice",
			PhotoReference: "turkey-stir-fry.dim_800x600.jpg",
			HealthExplanation: "Lean protein and whole grain brown rice for balanced blood sugar, with low-sodium " +
				"soy sauce to keep sodium moderate.",
			Ingredients: []string{"turkey breast", "broccoli", "bell peppers", "snap peas", "ginger", "garlic",
				"low-sodium soy sauce", "brown rice", "sesame oil"},
			Instructions: []string{
				"Cook the brown rice.",
				"Stir-fry the turkey in sesame oil until browned.",
				"Add the vegetables, ginger and garlic and cook for 4 minutes.",
				"Finish with soy sauce and serve over rice.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 470, Protein: 35, Carbohydrates: 48, Fats: 13, Sodium: 520},
		},
		{
			Name:           "Greek Yogurt Parfait with Berries",
			PhotoReference: "yogurt-parfait.dim_800x600.jpg",
			HealthExplanation: "Calcium-rich yogurt supports bone health in osteoporosis. Berries and chia seeds add " +
				"fiber with little added sugar, which suits diabetes.",
			Ingredients: []string{"plain greek yogurt", "blueberries", "strawberries", "chia seeds", "walnuts", "cinnamon"},
			Instructions: []string{
				"Layer yogurt and berries in a glass.",
				"Top with chia seeds, chopped walnuts and cinnamon.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 300, Protein: 20, Carbohydrates: 28, Fats: 12, Sodium: 80},
		},
		{
			Name:           "Baked Chicken with Sweet Potato and Green Beans",
			PhotoReference: "baked-chicken-sweet-potato.dim_800x600.jpg",
			HealthExplanation: "Lean protein with a fiber-rich sweet potato. A low sodium choice suitable for high " +
				"blood pressure.",
			Ingredients: []string{"chicken breast", "sweet potato", "green beans", "olive oil", "rosemary", "black pepper"},
			Instructions: []string{
				"Heat the oven to 200C.",
				"Toss the sweet potato cubes and green beans with olive oil and rosemary.",
				"Bake with the chicken for 25 minutes.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 450, Protein: 40, Carbohydrates: 38, Fats: 14, Sodium: 260},
		},
		{
			Name:           "Black Bean and Vegetable Tacos",
			PhotoReference: "black-bean-tacos.dim_800x600.jpg",
			HealthExplanation: "Plant protein and fiber from black beans support heart health, and the iron in beans " +
				"helps with anemia.",
			Ingredients: []string{"corn tortillas", "black beans", "avocado", "fresh salsa", "red cabbage", "lime", "cilantro"},
			Instructions: []string{
				"Warm the tortillas in a dry pan.",
				"Mash half of the beans and fold in the rest.",
				"Fill the tortillas with beans, cabbage, avocado and salsa and finish with lime.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 430, Protein: 16, Carbohydrates: 58, Fats: 15, Sodium: 560},
		},
		{
			Name:           "Oatmeal with Banana and Almonds",
			PhotoReference: "oatmeal-banana.dim_800x600.jpg",
			HealthExplanation: "Soluble oat fiber lowers cholesterol for heart disease, and calcium from milk " +
				"supports bone health.",
			Ingredients: []string{"rolled oats", "banana", "almonds", "skim milk", "cinnamon"},
			Instructions: []string{
				"Simmer the oats in milk for 5 minutes.",
				"Top with sliced banana, almonds and cinnamon.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 350, Protein: 13, Carbohydrates: 55, Fats: 10, Sodium: 90},
		},
		{
			Name:           "Tofu and Broccoli Bowl",
			PhotoReference: "tofu-broccoli-bowl.dim_800x600.jpg",
			HealthExplanation: "Calcium-set tofu and broccoli support bone health, and plant protein with fiber " +
				"helps blood sugar control.",
			Ingredients: []string{"firm tofu", "broccoli", "brown rice", "edamame", "sesame seeds",
				"low-sodium soy sauce", "ginger"},
			Instructions: []string{
				"Press and cube the tofu, then pan-sear until golden.",
				"Steam the broccoli and edamame.",
				"Serve over brown rice with soy sauce, ginger and sesame seeds.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 420, Protein: 24, Carbohydrates: 45, Fats: 16, Sodium: 430},
		},
		{
			Name:              "Shrimp and Zucchini Noodles",
			PhotoReference:    "shrimp-zucchini-noodles.dim_800x600.jpg",
			HealthExplanation: "Low-carb vegetable noodles suit diabetes and lean shrimp keeps calories low.",
			Ingredients:       []string{"shrimp", "zucchini", "cherry tomatoes", "garlic", "olive oil", "basil"},
			Instructions: []string{
				"Spiralize the zucchini.",
				"Saute the shrimp with garlic in olive oil for 3 minutes.",
				"Add tomatoes and zucchini noodles and toss for 2 minutes, then add basil.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 290, Protein: 28, Carbohydrates: 14, Fats: 13, Sodium: 450},
		},
		{
			Name:              "Lean Beef and Barley Soup",
			PhotoReference:    "beef-barley-soup.dim_800x600.jpg",
			HealthExplanation: "Iron from lean beef helps with anemia and barley fiber supports heart health.",
			Ingredients: []string{"lean beef", "pearl barley", "carrots", "celery", "onion",
				"low-sodium beef broth", "thyme"},
			Instructions: []string{
				"Brown the beef in a heavy pot.",
				"Add the vegetables, barley, broth and thyme.",
				"Simmer for 45 minutes until the barley is tender.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 410, Protein: 30, Carbohydrates: 40, Fats: 12, Sodium: 620},
		},
		{
			Name:              "Classic Margherita Pizza",
			PhotoReference:    "margherita-pizza.dim_800x600.jpg",
			HealthExplanation: "A comfort classic best enjoyed occasionally. Provides calcium from cheese.",
			Ingredients:       []string{"pizza dough", "tomato sauce", "mozzarella cheese", "fresh basil", "olive oil", "salt"},
			Instructions: []string{
				"Stretch the dough and spread the sauce.",
				"Top with mozzarella and bake at 250C for 10 minutes.",
				"Finish with basil and olive oil.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 780, Protein: 30, Carbohydrates: 92, Fats: 30, Sodium: 1450},
		},
		{
			Name:           "Quinoa Stuffed Bell Peppers",
			PhotoReference: "stuffed-peppers.dim_800x600.jpg",
			HealthExplanation: "Whole-grain quinoa and beans deliver fiber and plant protein for steady blood sugar " +
				"and heart health.",
			Ingredients: []string{"bell peppers", "quinoa", "black beans", "corn", "tomatoes", "onion", "cumin"},
			Instructions: []string{
				"Cook the quinoa and mix with beans, corn, tomatoes, onion and cumin.",
				"Fill the halved peppers and bake for 25 minutes.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 360, Protein: 15, Carbohydrates: 55, Fats: 8, Sodium: 300},
		},
		{
			Name:           "Sardines on Whole-Grain Toast with Kale",
			PhotoReference: "sardine-toast.dim_800x600.jpg",
			HealthExplanation: "Sardines with edible bones provide calcium and vitamin D for osteoporosis, and their " +
				"omega-3 fats support heart health.",
			Ingredients: []string{"sardines", "whole-grain bread", "kale", "lemon", "olive oil"},
			Instructions: []string{
				"Toast the bread.",
				"Saute the kale in olive oil.",
				"Top the toast with kale and sardines and squeeze over lemon.",
			},
			NutritionSummary: domain.NutritionSummary{Calories: 390, Protein: 26, Carbohydrates: 30, Fats: 18, Sodium: 540},
		},
	}
}
