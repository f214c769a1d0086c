package services

import "github.com/neimasilk/healthycoaching-id-sub000/nutrition"

// SeedFoods returns the bundled starter catalog: common Indonesian foods
// with per-100g nutrient records adapted from the TKPI food composition
// tables. IDs are stable slugs so re-importing never duplicates rows and
// sync peers agree on identity.
func SeedFoods() []nutrition.FoodItem {
	return []nutrition.FoodItem{
		{
			ID:       "nasi-putih",
			Name:     "Nasi Putih",
			AltNames: []string{"sego", "nasi"},
			Category: nutrition.CategoryStaple,
			Per100g: nutrition.Nutrients{
				Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3, Fiber: 0.4,
				SodiumMg: 1, SugarG: 0.1, CalciumMg: 10, IronMg: 0.2, FolateMcg: 58,
			},
			Portions: []nutrition.Portion{
				{Label: "1 centong", WeightGrams: 100},
				{Label: "1 piring", WeightGrams: 200},
			},
			Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 10,
		},
		{
			ID:       "nasi-goreng",
			Name:     "Nasi Goreng",
			Category: nutrition.CategoryStaple,
			Per100g: nutrition.Nutrients{
				Calories: 163, Protein: 5.4, Carbs: 20.6, Fat: 6.4, Fiber: 1.0,
				SodiumMg: 396, SugarG: 1.8, VitaminA: 30, VitaminC: 2,
				CalciumMg: 22, IronMg: 1.1, FolateMcg: 12,
			},
			Portions:   []nutrition.Portion{{Label: "1 piring", WeightGrams: 250}},
			Allergens:  []string{"egg", "soy"},
			Diet:       nutrition.DietFlags{HalalCertified: true},
			Nationwide: true,
			Popularity: 10,
		},
		{
			ID:       "bubur-ayam",
			Name:     "Bubur Ayam",
			Category: nutrition.CategoryStaple,
			Per100g: nutrition.Nutrients{
				Calories: 75, Protein: 3.8, Carbs: 10.5, Fat: 2.1, Fiber: 0.3,
				SodiumMg: 310, SugarG: 0.4, CalciumMg: 12, IronMg: 0.5, FolateMcg: 8,
			},
			Portions:   []nutrition.Portion{{Label: "1 mangkuk", WeightGrams: 350}},
			Allergens:  []string{"soy"},
			Diet:       nutrition.DietFlags{HalalCertified: true},
			Nationwide: true,
			Popularity: 8,
		},
		{
			ID:       "tempe-goreng",
			Name:     "Tempe Goreng",
			Category: nutrition.CategorySideDish,
			Per100g: nutrition.Nutrients{
				Calories: 225, Protein: 17.0, Carbs: 10.0, Fat: 14.0, Fiber: 5.0,
				SodiumMg: 120, SugarG: 0.5, CalciumMg: 96, IronMg: 2.3, FolateMcg: 20,
			},
			Portions:   []nutrition.Portion{{Label: "1 potong", WeightGrams: 50}},
			Allergens:  []string{"soy"},
			Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 9,
		},
		{
			ID:       "tahu-goreng",
			Name:     "Tahu Goreng",
			Category: nutrition.CategorySideDish,
			Per100g: nutrition.Nutrients{
				Calories: 190, Protein: 12.5, Carbs: 5.0, Fat: 13.8, Fiber: 1.8,
				SodiumMg: 95, SugarG: 0.4, CalciumMg: 200, IronMg: 2.5, FolateMcg: 15,
			},
			Portions:   []nutrition.Portion{{Label: "1 potong", WeightGrams: 40}},
			Allergens:  []string{"soy"},
			Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 9,
		},
		{
			ID:       "ayam-goreng",
			Name:     "Ayam Goreng",
			Category: nutrition.CategorySideDish,
			Per100g: nutrition.Nutrients{
				Calories: 260, Protein: 24.0, Carbs: 6.0, Fat: 15.0, Fiber: 0.3,
				SodiumMg: 430, SugarG: 0.2, VitaminA: 35, CalciumMg: 15, IronMg: 1.3, FolateMcg: 6,
			},
			Portions: []nutrition.Portion{
				{Label: "1 potong paha", WeightGrams: 80},
				{Label: "1 potong dada", WeightGrams: 100},
			},
			Diet:       nutrition.DietFlags{HalalCertified: true},
			Nationwide: true,
			Popularity: 10,
		},
		{
			ID:       "rendang-daging",
			Name:     "Rendang Daging",
			AltNames: []string{"rendang"},
			Category: nutrition.CategorySideDish,
			Per100g: nutrition.Nutrients{
				Calories: 193, Protein: 19.7, Carbs: 7.8, Fat: 9.5, Fiber: 1.2,
				SodiumMg: 360, SugarG: 2.1, VitaminA: 20, CalciumMg: 30, IronMg: 3.2, FolateMcg: 10,
			},
			Portions:   []nutrition.Portion{{Label: "1 potong", WeightGrams: 75}},
			Diet:       nutrition.DietFlags{HalalCertified: true},
			Nationwide: true,
			Popularity: 9,
		},
		{
			ID:       "ikan-bakar",
			Name:     "Ikan Bakar",
			Category: nutrition.CategorySideDish,
			Per100g: nutrition.Nutrients{
				Calories: 126, Protein: 22.0, Carbs: 1.5, Fat: 3.5, Fiber: 0.2,
				SodiumMg: 340, SugarG: 0.8, VitaminA: 15, CalciumMg: 40, IronMg: 1.0, FolateMcg: 9,
			},
			Portions:   []nutrition.Portion{{Label: "1 ekor sedang", WeightGrams: 150}},
			Allergens:  []string{"fish"},
			Diet:       nutrition.DietFlags{HalalCertified: true},
			Nationwide: true,
			Popularity: 8,
		},
		{
			ID:       "telur-balado",
			Name:     "Telur Balado",
			Category: nutrition.CategorySideDish,
			Per100g: nutrition.Nutrients{
				Calories: 180, Protein: 11.5, Carbs: 4.2, Fat: 13.0, Fiber: 0.8,
				SodiumMg: 390, SugarG: 2.5, VitaminA: 160, VitaminC: 5,
				CalciumMg: 50, IronMg: 1.8, FolateMcg: 44,
			},
			Portions:   []nutrition.Portion{{Label: "1 butir", WeightGrams: 60}},
			Allergens:  []string{"egg"},
			Diet:       nutrition.DietFlags{Vegetarian: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 8,
		},
		{
			ID:       "sate-ayam",
			Name:     "Sate Ayam",
			Category: nutrition.CategorySideDish,
			Per100g: nutrition.Nutrients{
				Calories: 225, Protein: 18.0, Carbs: 8.0, Fat: 13.0, Fiber: 1.0,
				SodiumMg: 420, SugarG: 4.5, CalciumMg: 25, IronMg: 1.6, FolateMcg: 14,
			},
			Portions: []nutrition.Portion{
				{Label: "1 tusuk", WeightGrams: 20},
				{Label: "1 porsi (10 tusuk)", WeightGrams: 200},
			},
			Allergens:  []string{"peanut", "soy"},
			Diet:       nutrition.DietFlags{HalalCertified: true},
			Nationwide: true,
			Popularity: 9,
		},
		{
			ID:       "soto-ayam",
			Name:     "Soto Ayam",
			Category: nutrition.CategorySideDish,
			Per100g: nutrition.Nutrients{
				Calories: 78, Protein: 6.5, Carbs: 5.2, Fat: 3.4, Fiber: 0.6,
				SodiumMg: 380, SugarG: 0.9, VitaminA: 25, VitaminC: 3,
				CalciumMg: 20, IronMg: 0.8, FolateMcg: 11,
			},
			Portions:   []nutrition.Portion{{Label: "1 mangkuk", WeightGrams: 400}},
			Diet:       nutrition.DietFlags{HalalCertified: true},
			Nationwide: true,
			Popularity: 9,
		},
		{
			ID:       "gado-gado",
			Name:     "Gado-Gado",
			Category: nutrition.CategoryVegetable,
			Per100g: nutrition.Nutrients{
				Calories: 137, Protein: 6.1, Carbs: 11.0, Fat: 8.0, Fiber: 2.5,
				SodiumMg: 310, SugarG: 3.5, VitaminA: 210, VitaminC: 12,
				CalciumMg: 60, IronMg: 1.8, FolateMcg: 45,
			},
			Portions:   []nutrition.Portion{{Label: "1 porsi", WeightGrams: 300}},
			Allergens:  []string{"peanut", "egg"},
			Diet:       nutrition.DietFlags{Vegetarian: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 8,
		},
		{
			ID:       "tumis-kangkung",
			Name:     "Tumis Kangkung",
			AltNames: []string{"cah kangkung"},
			Category: nutrition.CategoryVegetable,
			Per100g: nutrition.Nutrients{
				Calories: 51, Protein: 2.9, Carbs: 4.4, Fat: 2.7, Fiber: 2.5,
				SodiumMg: 290, SugarG: 1.1, VitaminA: 315, VitaminC: 17,
				CalciumMg: 72, IronMg: 1.7, FolateMcg: 57,
			},
			Portions:   []nutrition.Portion{{Label: "1 porsi", WeightGrams: 150}},
			Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 8,
		},
		{
			ID:       "sayur-asem",
			Name:     "Sayur Asem",
			Category: nutrition.CategoryVegetable,
			Per100g: nutrition.Nutrients{
				Calories: 29, Protein: 1.2, Carbs: 5.9, Fat: 0.4, Fiber: 1.9,
				SodiumMg: 280, SugarG: 2.2, VitaminA: 95, VitaminC: 8,
				CalciumMg: 35, IronMg: 0.9, FolateMcg: 30,
			},
			Portions:   []nutrition.Portion{{Label: "1 mangkuk", WeightGrams: 250}},
			Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 7,
		},
		{
			ID:       "pecel-sayur",
			Name:     "Pecel Sayur",
			AltNames: []string{"pecel"},
			Category: nutrition.CategoryVegetable,
			Per100g: nutrition.Nutrients{
				Calories: 120, Protein: 5.0, Carbs: 10.5, Fat: 6.5, Fiber: 3.1,
				SodiumMg: 300, SugarG: 4.0, VitaminA: 180, VitaminC: 10,
				CalciumMg: 75, IronMg: 1.9, FolateMcg: 52,
			},
			Portions:  []nutrition.Portion{{Label: "1 porsi", WeightGrams: 250}},
			Allergens: []string{"peanut"},
			Diet:      nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Regions: []nutrition.Region{
				{Province: "Jawa Timur"},
				{Province: "Jawa Tengah"},
				{Province: "DI Yogyakarta"},
			},
			Popularity: 7,
		},
		{
			ID:       "gudeg",
			Name:     "Gudeg",
			Category: nutrition.CategorySideDish,
			Per100g: nutrition.Nutrients{
				Calories: 142, Protein: 2.1, Carbs: 18.5, Fat: 7.0, Fiber: 2.8,
				SodiumMg: 220, SugarG: 9.0, VitaminA: 12, VitaminC: 4,
				CalciumMg: 45, IronMg: 1.1, FolateMcg: 18,
			},
			Portions: []nutrition.Portion{{Label: "1 porsi", WeightGrams: 150}},
			Diet:     nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Regions: []nutrition.Region{
				{Province: "DI Yogyakarta"},
				{Province: "Jawa Tengah"},
			},
			Popularity: 6,
		},
		{
			ID:       "pempek",
			Name:     "Pempek",
			AltNames: []string{"empek-empek"},
			Category: nutrition.CategorySideDish,
			Per100g: nutrition.Nutrients{
				Calories: 196, Protein: 9.2, Carbs: 27.0, Fat: 5.5, Fiber: 0.9,
				SodiumMg: 480, SugarG: 6.5, CalciumMg: 38, IronMg: 1.2, FolateMcg: 7,
			},
			Portions:  []nutrition.Portion{{Label: "1 buah kapal selam", WeightGrams: 120}},
			Allergens: []string{"fish", "egg"},
			Diet:      nutrition.DietFlags{HalalCertified: true},
			Regions: []nutrition.Region{
				{Province: "Sumatera Selatan"},
			},
			Popularity: 6,
		},
		{
			ID:       "coto-makassar",
			Name:     "Coto Makassar",
			Category: nutrition.CategorySideDish,
			Per100g: nutrition.Nutrients{
				Calories: 112, Protein: 9.8, Carbs: 3.0, Fat: 6.8, Fiber: 0.5,
				SodiumMg: 410, SugarG: 0.6, CalciumMg: 18, IronMg: 2.4, FolateMcg: 8,
			},
			Portions:  []nutrition.Portion{{Label: "1 mangkuk", WeightGrams: 350}},
			Allergens: []string{"peanut"},
			Diet:      nutrition.DietFlags{HalalCertified: true},
			Regions: []nutrition.Region{
				{Province: "Sulawesi Selatan", City: "Makassar"},
			},
			Popularity: 6,
		},
		{
			ID:       "alpukat",
			Name:     "Alpukat",
			AltNames: []string{"avokad"},
			Category: nutrition.CategoryFruit,
			Per100g: nutrition.Nutrients{
				Calories: 160, Protein: 2.0, Carbs: 8.5, Fat: 14.7, Fiber: 6.7,
				SodiumMg: 7, SugarG: 0.7, VitaminA: 7, VitaminC: 10,
				CalciumMg: 12, IronMg: 0.6, FolateMcg: 81,
			},
			Portions: []nutrition.Portion{
				{Label: "1 buah", WeightGrams: 200},
				{Label: "1/2 buah", WeightGrams: 100},
			},
			Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 8,
		},
		{
			ID:       "pepaya",
			Name:     "Pepaya",
			Category: nutrition.CategoryFruit,
			Per100g: nutrition.Nutrients{
				Calories: 43, Protein: 0.5, Carbs: 11.0, Fat: 0.3, Fiber: 1.7,
				SodiumMg: 8, SugarG: 7.8, VitaminA: 47, VitaminC: 61,
				CalciumMg: 20, IronMg: 0.3, FolateMcg: 37,
			},
			Portions:   []nutrition.Portion{{Label: "1 potong", WeightGrams: 140}},
			Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 8,
		},
		{
			ID:       "pisang-goreng",
			Name:     "Pisang Goreng",
			Category: nutrition.CategorySnack,
			Per100g: nutrition.Nutrients{
				Calories: 252, Protein: 2.1, Carbs: 37.0, Fat: 10.6, Fiber: 2.1,
				SodiumMg: 95, SugarG: 14.0, VitaminA: 10, VitaminC: 6,
				CalciumMg: 18, IronMg: 0.7, FolateMcg: 16,
			},
			Portions:   []nutrition.Portion{{Label: "1 buah", WeightGrams: 60}},
			Allergens:  []string{"gluten"},
			Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 9,
		},
		{
			ID:       "bubur-kacang-hijau",
			Name:     "Bubur Kacang Hijau",
			AltNames: []string{"burjo"},
			Category: nutrition.CategorySnack,
			Per100g: nutrition.Nutrients{
				Calories: 102, Protein: 4.1, Carbs: 17.0, Fat: 2.0, Fiber: 2.9,
				SodiumMg: 45, SugarG: 8.5, CalciumMg: 48, IronMg: 1.5, FolateMcg: 80,
			},
			Portions:   []nutrition.Portion{{Label: "1 mangkuk", WeightGrams: 250}},
			Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 7,
		},
		{
			ID:       "kerupuk-udang",
			Name:     "Kerupuk Udang",
			Category: nutrition.CategorySnack,
			Per100g: nutrition.Nutrients{
				Calories: 477, Protein: 5.5, Carbs: 65.0, Fat: 21.0, Fiber: 0.3,
				SodiumMg: 890, SugarG: 1.2, CalciumMg: 30, IronMg: 0.8, FolateMcg: 4,
			},
			Portions:   []nutrition.Portion{{Label: "1 keping", WeightGrams: 10}},
			Allergens:  []string{"shrimp"},
			Diet:       nutrition.DietFlags{HalalCertified: true},
			Nationwide: true,
			Popularity: 8,
		},
		{
			ID:       "es-teh-manis",
			Name:     "Es Teh Manis",
			AltNames: []string{"teh manis dingin"},
			Category: nutrition.CategoryDrink,
			Per100g: nutrition.Nutrients{
				Calories: 37, Carbs: 9.5, SugarG: 9.4,
			},
			Portions:   []nutrition.Portion{{Label: "1 gelas", WeightGrams: 250}},
			Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 10,
		},
		{
			ID:       "bolu-pandan",
			Name:     "Bolu Pandan",
			Category: nutrition.CategoryCake,
			Per100g: nutrition.Nutrients{
				Calories: 312, Protein: 6.0, Carbs: 46.0, Fat: 11.5, Fiber: 0.6,
				SodiumMg: 210, SugarG: 24.0, VitaminA: 90, CalciumMg: 35, IronMg: 1.0, FolateMcg: 22,
			},
			Portions:   []nutrition.Portion{{Label: "1 potong", WeightGrams: 45}},
			Allergens:  []string{"egg", "gluten", "milk"},
			Diet:       nutrition.DietFlags{Vegetarian: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 6,
		},
		{
			ID:       "sambal-terasi",
			Name:     "Sambal Terasi",
			Category: nutrition.CategoryCondiment,
			Per100g: nutrition.Nutrients{
				Calories: 95, Protein: 3.5, Carbs: 12.0, Fat: 3.8, Fiber: 2.4,
				SodiumMg: 920, SugarG: 5.5, VitaminA: 120, VitaminC: 28,
				CalciumMg: 42, IronMg: 1.4, FolateMcg: 19,
			},
			Portions:   []nutrition.Portion{{Label: "1 sendok makan", WeightGrams: 15}},
			Allergens:  []string{"shrimp"},
			Diet:       nutrition.DietFlags{HalalCertified: true},
			Nationwide: true,
			Popularity: 9,
		},
		{
			ID:       "bumbu-gulai",
			Name:     "Bumbu Gulai",
			Category: nutrition.CategorySpiceMix,
			Per100g: nutrition.Nutrients{
				Calories: 134, Protein: 2.8, Carbs: 14.0, Fat: 8.0, Fiber: 4.2,
				SodiumMg: 760, SugarG: 4.8, VitaminA: 60, VitaminC: 9,
				CalciumMg: 88, IronMg: 3.6, FolateMcg: 25,
			},
			Portions:   []nutrition.Portion{{Label: "1 sachet", WeightGrams: 50}},
			Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
			Nationwide: true,
			Popularity: 5,
		},
	}
}
