package recommendation

import (
	"sort"

	"healthy-eats-backend/domain"
)

type component struct {
	name      string
	nutrition domain.NutritionSummary
	optional  bool
}

type mealTemplate struct {
	keywords     []string
	photo        string
	rationale    string
	components   []component
	instructions []string
}

func nf(calories, protein, carbs, fats, sodium int) domain.NutritionSummary {
	return domain.NutritionSummary{
		Calories:      calories,
		Protein:       protein,
		Carbohydrates: carbs,
		Fats:          fats,
		Sodium:        sodium,
	}
}

func req(name string, n domain.NutritionSummary) component {
	return component{name: name, nutrition: n}
}

func opt(name string, n domain.NutritionSummary) component {
	return component{name: name, nutrition: n, optional: true}
}

// Templates are tried in order; the first one with a matching keyword wins.
var mealTemplates = []mealTemplate{
	{
		keywords:  []string{"curry", "tikka", "masala", "korma", "vindaloo"},
		photo:     "star-meal-curry.dim_800x600.jpg",
		rationale: "lean protein, chickpeas and warming spices over whole grains",
		components: []component{
			req("chicken breast", nf(190, 35, 0, 4, 80)),
			req("light coconut milk", nf(150, 1, 3, 15, 10)),
			req("chickpeas", nf(210, 11, 35, 3, 10)),
			req("onion", nf(20, 1, 5, 0, 2)),
			req("curry spices", nf(10, 0, 2, 0, 5)),
			req("brown rice", nf(220, 5, 46, 2, 10)),
			opt("spinach", nf(7, 1, 1, 0, 24)),
			opt("garlic", nf(5, 0, 1, 0, 1)),
		},
		instructions: []string{
			"Brown the protein in a deep pan.",
			"Add onion, garlic and spices and cook until fragrant.",
			"Pour in the sauce base with the chickpeas and simmer for 15 minutes.",
			"Fold in the greens and serve over the grain.",
		},
	},
	{
		keywords:  []string{"sushi", "maki", "poke", "sashimi", "onigiri"},
		photo:     "star-meal-sushi.dim_800x600.jpg",
		rationale: "omega-3 rich fish, whole grain rice and crisp vegetables",
		components: []component{
			req("brown rice", nf(220, 5, 46, 2, 10)),
			req("salmon", nf(180, 20, 0, 11, 50)),
			req("nori sheets", nf(10, 1, 1, 0, 20)),
			req("cucumber", nf(8, 0, 2, 0, 1)),
			opt("avocado", nf(120, 1, 6, 11, 5)),
			opt("low-sodium soy sauce", nf(10, 1, 1, 0, 300)),
			opt("pickled ginger", nf(10, 0, 2, 0, 60)),
		},
		instructions: []string{
			"Cook the rice and let it cool slightly.",
			"Lay the rice on the nori and add the filling in a line.",
			"Roll tightly, slice and serve with the dipping sauce.",
		},
	},
	{
		keywords:  []string{"pizza", "calzone", "flatbread"},
		photo:     "star-meal-pizza.dim_800x600.jpg",
		rationale: "a whole-grain crust and a generous load of vegetables",
		components: []component{
			req("whole-wheat pizza dough", nf(380, 14, 72, 4, 540)),
			req("tomato sauce", nf(40, 1, 8, 0, 300)),
			req("mozzarella cheese", nf(170, 12, 2, 13, 380)),
			req("bell peppers", nf(20, 1, 5, 0, 2)),
			req("mushrooms", nf(15, 2, 2, 0, 4)),
			opt("spinach", nf(7, 1, 1, 0, 24)),
			opt("olive oil", nf(60, 0, 0, 7, 0)),
			opt("fresh basil", nf(1, 0, 0, 0, 0)),
		},
		instructions: []string{
			"Heat the oven to 230C.",
			"Roll out the crust and spread the sauce.",
			"Add the topping and the vegetables.",
			"Bake for 12 minutes and finish with basil and a drizzle of oil.",
		},
	},
	{
		keywords:  []string{"burger", "cheeseburger", "hamburger", "slider"},
		photo:     "star-meal-burger.dim_800x600.jpg",
		rationale: "a leaner patty on a whole-grain bun with fresh toppings",
		components: []component{
			req("whole-wheat bun", nf(230, 8, 40, 4, 380)),
			req("beef patty", nf(280, 22, 0, 20, 75)),
			req("lettuce", nf(5, 0, 1, 0, 5)),
			req("tomato", nf(10, 0, 2, 0, 3)),
			opt("cheddar cheese", nf(110, 7, 0, 9, 180)),
			opt("red onion", nf(10, 0, 2, 0, 1)),
			opt("mustard", nf(10, 1, 1, 0, 120)),
		},
		instructions: []string{
			"Shape the patty and grill for 4 minutes per side.",
			"Toast the bun.",
			"Stack the patty with the toppings.",
		},
	},
	{
		keywords: []string{"pasta", "spaghetti", "lasagna", "macaroni", "fettuccine", "penne",
			"carbonara", "alfredo", "linguine", "ravioli"},
		photo:     "star-meal-pasta.dim_800x600.jpg",
		rationale: "whole-grain pasta, lean protein and a vegetable-rich tomato sauce",
		components: []component{
			req("whole-wheat pasta", nf(350, 14, 70, 2, 5)),
			req("tomato sauce", nf(60, 2, 12, 0, 450)),
			req("lean ground turkey", nf(170, 22, 0, 9, 75)),
			req("zucchini", nf(20, 1, 4, 0, 10)),
			opt("parmesan cheese", nf(80, 7, 1, 5, 300)),
			opt("garlic", nf(5, 0, 1, 0, 1)),
			opt("olive oil", nf(60, 0, 0, 7, 0)),
			opt("fresh basil", nf(1, 0, 0, 0, 0)),
		},
		instructions: []string{
			"Cook the base until just tender.",
			"Brown the protein with garlic, then add the zucchini and sauce.",
			"Toss everything together and finish with the topping and basil.",
		},
	},
	{
		keywords:  []string{"taco", "burrito", "quesadilla", "nachos", "enchilada", "fajita"},
		photo:     "star-meal-tacos.dim_800x600.jpg",
		rationale: "grilled lean protein, beans and fresh vegetables",
		components: []component{
			req("corn tortillas", nf(150, 4, 30, 2, 20)),
			req("grilled chicken breast", nf(190, 35, 0, 4, 80)),
			req("black beans", nf(110, 7, 20, 0, 5)),
			req("fresh salsa", nf(20, 1, 4, 0, 200)),
			opt("avocado", nf(120, 1, 6, 11, 5)),
			opt("shredded cabbage", nf(10, 1, 2, 0, 8)),
			opt("cheddar cheese", nf(110, 7, 0, 9, 180)),
			opt("lime", nf(10, 0, 3, 0, 1)),
		},
		instructions: []string{
			"Warm the wraps in a dry pan.",
			"Slice the protein and warm the beans.",
			"Fill the wraps and top with salsa, cabbage and lime.",
		},
	},
	{
		keywords:  []string{"ramen", "pho", "noodle", "udon", "pad thai", "lo mein", "soba"},
		photo:     "star-meal-noodles.dim_800x600.jpg",
		rationale: "a light broth packed with greens and lean protein",
		components: []component{
			req("buckwheat soba noodles", nf(200, 8, 42, 1, 100)),
			req("low-sodium vegetable broth", nf(15, 1, 3, 0, 140)),
			req("bok choy", nf(10, 1, 2, 0, 45)),
			req("mushrooms", nf(15, 2, 2, 0, 4)),
			opt("firm tofu", nf(90, 10, 2, 5, 10)),
			opt("soft-boiled egg", nf(70, 6, 0, 5, 60)),
			opt("scallions", nf(5, 0, 1, 0, 2)),
			opt("low-sodium soy sauce", nf(10, 1, 1, 0, 300)),
		},
		instructions: []string{
			"Bring the broth to a simmer with the mushrooms.",
			"Cook the base separately and rinse.",
			"Add the greens for the last 2 minutes.",
			"Assemble in a bowl with the toppings.",
		},
	},
	{
		keywords:  []string{"pancake", "waffle", "french toast", "crepe"},
		photo:     "star-meal-pancakes.dim_800x600.jpg",
		rationale: "whole-grain batter sweetened with fruit instead of sugar",
		components: []component{
			req("whole-wheat flour", nf(200, 8, 42, 1, 2)),
			req("egg", nf(70, 6, 0, 5, 60)),
			req("skim milk", nf(45, 4, 6, 0, 55)),
			req("mashed banana", nf(100, 1, 26, 0, 1)),
			req("fresh berries", nf(40, 1, 10, 0, 1)),
			opt("maple syrup", nf(50, 0, 13, 0, 2)),
			opt("cinnamon", nf(5, 0, 2, 0, 0)),
		},
		instructions: []string{
			"Whisk the wet ingredients, then fold in the dry ones.",
			"Cook small rounds on a lightly oiled pan until bubbles form, then flip.",
			"Serve with berries and cinnamon.",
		},
	},
	{
		keywords:  []string{"ice cream", "gelato", "milkshake", "cake", "cookie", "brownie", "dessert", "chocolate"},
		photo:     "star-meal-dessert.dim_800x600.jpg",
		rationale: "frozen fruit and cocoa for sweetness without added sugar",
		components: []component{
			req("frozen banana", nf(100, 1, 26, 0, 1)),
			req("plain greek yogurt", nf(100, 17, 6, 0, 60)),
			req("cocoa powder", nf(20, 2, 3, 1, 2)),
			req("fresh berries", nf(40, 1, 10, 0, 1)),
			opt("chopped walnuts", nf(90, 2, 2, 9, 0)),
		},
		instructions: []string{
			"Blend the frozen fruit with the creamy base until smooth.",
			"Stir in the cocoa.",
			"Top with berries and serve right away.",
		},
	},
	{
		keywords:  []string{"salad", "caesar", "cobb"},
		photo:     "star-meal-salad.dim_800x600.jpg",
		rationale: "crisp greens, lean protein and an olive oil dressing",
		components: []component{
			req("romaine lettuce", nf(15, 1, 3, 0, 8)),
			req("grilled chicken breast", nf(190, 35, 0, 4, 80)),
			req("cherry tomatoes", nf(15, 1, 3, 0, 4)),
			req("cucumber", nf(8, 0, 2, 0, 1)),
			req("olive oil and lemon dressing", nf(120, 0, 1, 14, 0)),
			opt("chickpeas", nf(105, 6, 18, 2, 5)),
			opt("parmesan cheese", nf(80, 7, 1, 5, 300)),
			opt("whole-grain croutons", nf(60, 2, 10, 2, 110)),
		},
		instructions: []string{
			"Chop the greens and vegetables.",
			"Slice the protein.",
			"Toss with the dressing and add the toppings.",
		},
	},
	{
		keywords:  []string{"sandwich", "sub", "wrap", "panini", "blt", "club", "hot dog"},
		photo:     "star-meal-sandwich.dim_800x600.jpg",
		rationale: "whole-grain bread, lean protein and plenty of vegetables",
		components: []component{
			req("whole-grain bread", nf(160, 8, 28, 2, 260)),
			req("low-sodium sliced turkey breast", nf(90, 16, 1, 1, 250)),
			req("lettuce", nf(5, 0, 1, 0, 5)),
			req("tomato", nf(10, 0, 2, 0, 3)),
			opt("mashed avocado", nf(80, 1, 4, 7, 3)),
			opt("mustard", nf(10, 1, 1, 0, 120)),
		},
		instructions: []string{
			"Toast the bread if you like.",
			"Spread the avocado and layer the filling and vegetables.",
		},
	},
	{
		keywords:  []string{"fries", "chips", "potato", "wedges"},
		photo:     "star-meal-fries.dim_800x600.jpg",
		rationale: "oven-baked sweet potato instead of deep frying",
		components: []component{
			req("sweet potato wedges", nf(180, 3, 41, 0, 70)),
			req("olive oil", nf(60, 0, 0, 7, 0)),
			req("smoked paprika", nf(5, 0, 1, 0, 1)),
			opt("garlic powder", nf(5, 0, 1, 0, 1)),
			opt("greek yogurt dip", nf(50, 8, 3, 0, 40)),
		},
		instructions: []string{
			"Heat the oven to 220C.",
			"Toss the wedges with oil and spices.",
			"Bake for 25 minutes, turning once.",
		},
	},
	{
		keywords:  []string{"fried rice", "rice bowl", "stir fry", "stir-fry", "bibimbap", "rice"},
		photo:     "star-meal-rice-bowl.dim_800x600.jpg",
		rationale: "whole grain rice, mixed vegetables and lean protein",
		components: []component{
			req("brown rice", nf(220, 5, 46, 2, 10)),
			req("mixed vegetables", nf(50, 3, 10, 0, 40)),
			req("chicken breast", nf(190, 35, 0, 4, 80)),
			req("low-sodium soy sauce", nf(10, 1, 1, 0, 300)),
			opt("egg", nf(70, 6, 0, 5, 60)),
			opt("sesame oil", nf(40, 0, 0, 5, 0)),
			opt("scallions", nf(5, 0, 1, 0, 2)),
		},
		instructions: []string{
			"Cook the protein in a hot pan and set aside.",
			"Stir-fry the vegetables, then add the rice.",
			"Return the protein, season and top with scallions.",
		},
	},
	{
		keywords:  []string{"soup", "stew", "chili", "chowder"},
		photo:     "star-meal-soup.dim_800x600.jpg",
		rationale: "fiber-rich legumes and vegetables in a low-sodium broth",
		components: []component{
			req("low-sodium vegetable broth", nf(15, 1, 3, 0, 140)),
			req("lentils", nf(230, 18, 40, 1, 5)),
			req("carrots", nf(25, 1, 6, 0, 40)),
			req("celery", nf(6, 0, 1, 0, 32)),
			req("tomatoes", nf(20, 1, 4, 0, 5)),
			opt("fresh herbs", nf(1, 0, 0, 0, 0)),
		},
		instructions: []string{
			"Soften the vegetables in a little oil.",
			"Add the broth and legumes and simmer for 25 minutes.",
			"Season with herbs.",
		},
	},
	{
		keywords:  []string{"steak", "ribs", "bbq", "barbecue", "brisket", "pork chop"},
		photo:     "star-meal-steak.dim_800x600.jpg",
		rationale: "a lean cut with roasted vegetables",
		components: []component{
			req("lean sirloin", nf(250, 36, 0, 11, 80)),
			req("roasted sweet potato", nf(110, 2, 26, 0, 40)),
			req("steamed broccoli", nf(30, 3, 6, 0, 30)),
			opt("olive oil", nf(60, 0, 0, 7, 0)),
			opt("rosemary", nf(1, 0, 0, 0, 0)),
		},
		instructions: []string{
			"Rub the meat with oil and rosemary and sear for 3 minutes per side.",
			"Rest for 5 minutes while the vegetables finish roasting.",
		},
	},
	{
		keywords:  []string{"fried chicken", "chicken wing", "wings", "nugget", "tenders", "chicken"},
		photo:     "star-meal-chicken.dim_800x600.jpg",
		rationale: "oven-crisped chicken instead of deep frying",
		components: []component{
			req("oven-baked chicken breast", nf(190, 35, 0, 4, 80)),
			req("whole-wheat breadcrumbs", nf(60, 2, 11, 1, 90)),
			req("egg white", nf(17, 4, 0, 0, 55)),
			opt("smoked paprika", nf(5, 0, 1, 0, 1)),
			opt("green salad", nf(20, 1, 4, 0, 10)),
		},
		instructions: []string{
			"Heat the oven to 220C.",
			"Dip the chicken in the binder, then press into the coating.",
			"Bake on a rack for 20 minutes until crisp.",
		},
	},
}

var genericTemplate = mealTemplate{
	photo:     "star-meal-generic.dim_800x600.jpg",
	rationale: "a smaller portion balanced with vegetables and greens",
	components: []component{
		req("steamed mixed vegetables", nf(60, 3, 12, 0, 40)),
		req("leafy green salad", nf(20, 1, 4, 0, 10)),
		opt("olive oil", nf(60, 0, 0, 7, 0)),
	},
	instructions: []string{
		"Serve a modest portion of the dish.",
		"Fill half of the plate with the steamed vegetables.",
		"Add a side salad dressed with a little olive oil.",
	},
}

var favoriteNutrition = nf(350, 15, 40, 14, 600)

// substitutions lists healthier or allergen-free replacements, keyed by
// the ingredient term they replace.
var substitutions = map[string][]component{
	"cheese": {
		req("low-sodium part-skim cheese", nf(120, 10, 1, 8, 90)),
		req("nutritional yeast", nf(40, 5, 3, 0, 10)),
		req("mashed avocado", nf(80, 1, 4, 7, 3)),
	},
	"pizza dough": {
		req("whole-wheat pizza dough", nf(380, 14, 72, 4, 540)),
		req("cauliflower crust", nf(180, 9, 20, 7, 310)),
	},
	"beef": {
		req("lean ground turkey patty", nf(200, 24, 0, 11, 90)),
		req("grilled portobello mushroom", nf(30, 3, 4, 0, 10)),
	},
	"bun": {
		req("whole-wheat bun", nf(230, 8, 40, 4, 380)),
		req("lettuce wrap", nf(10, 1, 2, 0, 10)),
	},
	"bread": {
		req("whole-grain bread", nf(160, 8, 28, 2, 260)),
		req("lettuce wrap", nf(10, 1, 2, 0, 10)),
	},
	"breadcrumb": {
		req("crushed rolled oats", nf(40, 1, 7, 1, 0)),
	},
	"pasta": {
		req("whole-wheat pasta", nf(350, 14, 70, 2, 5)),
		req("spiralized zucchini", nf(40, 3, 7, 0, 20)),
	},
	"noodle": {
		req("spiralized zucchini", nf(40, 3, 7, 0, 20)),
	},
	"tortilla": {
		req("lettuce leaves", nf(5, 0, 1, 0, 5)),
	},
	"flour": {
		req("blended rolled oats", nf(150, 5, 27, 3, 0)),
	},
	"milk": {
		req("unsweetened oat drink", nf(60, 1, 8, 2, 50)),
	},
	"coconut milk": {
		req("pureed pumpkin", nf(40, 1, 10, 0, 5)),
	},
	"yogurt": {
		req("silken tofu", nf(60, 6, 2, 3, 5)),
		req("pureed pumpkin", nf(40, 1, 10, 0, 5)),
	},
	"egg": {
		req("ground flaxseed with water", nf(37, 1, 2, 3, 2)),
	},
	"salmon": {
		req("baked tofu", nf(90, 10, 2, 5, 10)),
		req("avocado", nf(120, 1, 6, 11, 5)),
	},
	"tofu": {
		req("grilled chicken breast", nf(190, 35, 0, 4, 80)),
		req("chickpeas", nf(105, 6, 18, 2, 5)),
	},
	"soy sauce": {
		req("low-sodium soy sauce", nf(10, 1, 1, 0, 300)),
		req("coconut aminos", nf(10, 0, 2, 0, 90)),
	},
	"chicken": {
		req("baked tofu", nf(90, 10, 2, 5, 10)),
		req("chickpeas", nf(105, 6, 18, 2, 5)),
	},
	"turkey": {
		req("chickpeas", nf(105, 6, 18, 2, 5)),
		req("grilled portobello mushroom", nf(30, 3, 4, 0, 10)),
	},
	"banana": {
		req("unsweetened applesauce", nf(50, 0, 13, 0, 2)),
		req("frozen mango", nf(100, 1, 25, 0, 2)),
	},
	"syrup": {
		req("sugar-free syrup", nf(10, 0, 3, 0, 40)),
	},
	"spinach": {
		req("arugula", nf(5, 1, 1, 0, 5)),
	},
	"potato": {
		req("sweet potato", nf(110, 2, 26, 0, 40)),
		req("roasted cauliflower", nf(40, 3, 8, 0, 30)),
	},
	"sesame": {
		req("olive oil", nf(60, 0, 0, 7, 0)),
	},
	"walnut": {
		req("toasted pumpkin seeds", nf(80, 4, 2, 7, 2)),
	},
}

var substitutionKeys = func() []string {
	keys := make([]string, 0, len(substitutions))
	for k := range substitutions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// alternativesFor collects replacements for an ingredient, most specific key first.
func alternativesFor(ingredient string) []component {
	term := domain.NormalizeTerm(ingredient)
	var out []component
	seen := map[string]struct{}{}
	for _, key := range substitutionKeys {
		if !containsPhrase(term, key) {
			continue
		}
		for _, alt := range substitutions[key] {
			if alt.name == term {
				continue
			}
			if _, ok := seen[alt.name]; ok {
				continue
			}
			seen[alt.name] = struct{}{}
			out = append(out, alt)
		}
	}
	return out
}
