package catalog

func opt(name string, serving float64, unit string) OptionSpec {
	return OptionSpec{Name: name, Serving: serving, Unit: unit}
}

func group(opts ...OptionSpec) GroupSpec {
	return GroupSpec{Options: opts}
}

// Default returns the built-in catalog.
func Default() Spec {
	return Spec{Categories: []CategorySpec{
		{
			Name: "protein",
			Groups: []GroupSpec{
				group(opt("Chickpeas", 0.5, "cup"), opt("Beans", 0.5, "cup"), opt("Lentils", 0.5, "cup")),
				group(opt("Tofu", 4, "oz")),
				group(opt("Walnuts", 0.25, "cup"), opt("Peanuts", 0.25, "cup")),
				group(opt("Pine Nut", 2, "tbsp"), opt("Chia Seeds", 2, "tbsp")),
				group(opt("Sunflower seeds", 0.25, "cup"), opt("Pumpkin Seeds", 0.25, "cup")),
				group(opt("'Meat'balls", 4, "piece")),
			},
			Preferences: map[string]Preference{
				"Chickpeas/Beans/Lentils":       Fixed(4),
				"Tofu":                          Fixed(3),
				"Sunflower seeds/Pumpkin Seeds": InSeason(Union(Fall, Winter), 2, 0.5),
				"Walnuts/Peanuts":               InSeason(Winter, 2, 1),
			},
		},
		{
			Name: "nutrient",
			Groups: []GroupSpec{
				group(opt("Spinach", 2, "cup")),
				group(opt("Broccoli", 1, "cup"), opt("Brussel Sprouts", 1, "cup"), opt("Artichoke Hearts", 0.5, "cup")),
				group(opt("Green Beans", 1, "cup")),
				group(opt("Peas", 0.5, "cup")),
				group(opt("Chard", 2, "cup")),
				group(opt("Carrots", 1, "each"), opt("Beets", 1, "each")),
				group(opt("Radishes", 4, "each")),
				group(opt("Zucs", 0.5, "each")),
				group(opt("Tomato", 1, "each")),
				group(opt("Asparagus", 6, "spear")),
				group(opt("Squash", 1, "cup")),
				group(opt("Bok Choy", 1, "head")),
				group(opt("Cabbage", 1, "cup")),
				group(opt("Cauliflower", 1, "cup")),
				group(opt("Celery", 1, "stalk")),
				group(opt("Cucumber", 0.5, "each")),
				group(opt("corn", 1, "ear")),
			},
			Preferences: map[string]Preference{
				"Spinach":       InSeason(Summer, 7, 5),
				"Peas":          InSeason(Union(Winter, Spring), 5, 3),
				"Radishes":      InSeason(Summer, 2, 0.2),
				"Chard":         InSeason(Summer, 5, 1),
				"Tomato":        InSeason(Intersect(Summer, Fall), 4, 1),
				"Carrots/Beets": InSeason(Summer, 5, 2),
				"Cucumber":      InSeason(Summer, 2, 0.5),
				"corn":          InSeason(Summer, 2, 1),
				"Squash":        InSeason(Fall, 2, 0.1),
			},
		},
		{
			Name: "carb",
			Groups: []GroupSpec{
				group(opt("Potatoes", 1, "each")),
				group(opt("Rice", 0.5, "cup")),
				group(opt("Bread", 2, "slice")),
				group(opt("Tortilla", 2, "each")),
				group(opt("Pasta", 3, "oz")),
				group(opt("Quinoa", 0.5, "cup")),
				group(opt("Couscous", 0.5, "cup")),
				group(opt("Bulgar", 0.5, "cup")),
				group(opt("Barley", 0.5, "cup")),
				group(opt("Millet", 0.5, "cup")),
				group(opt("Sweet Potatoes", 1, "each")),
				group(opt("Crust", 0.25, "each")),
			},
			Preferences: map[string]Preference{
				"Rice":           Fixed(5),
				"Pasta":          Fixed(3),
				"Quinoa":         Fixed(3),
				"Tortilla":       Fixed(2),
				"Potatoes":       InSeason(Summer, 2, 1),
				"Sweet Potatoes": InSeason(Winter, 3, 1),
			},
		},
		{
			Name: "flare",
			Groups: []GroupSpec{
				group(opt("Peppers", 0.5, "each")),
				group(opt("Onions", 0.25, "each")),
				group(opt("Leek", 0.25, "each")),
				group(opt("Green Onion", 2, "stalk")),
				group(opt("Mushrooms", 0.5, "cup")),
				group(opt("chives", 1, "tbsp")),
				group(opt("Apples", 0.5, "each")),
				group(opt("Raisins", 2, "tbsp")),
				group(opt("Cheese", 1, "oz")),
			},
			Preferences: map[string]Preference{
				"Onions":    Fixed(3),
				"Mushrooms": InSeason(Winter, 2, 1),
				"chives":    InSeason(Spring, 3, 0.1),
				"Apples":    InSeason(Fall, 1.5, 1),
				"Raisins":   InSeason(Union(Fall, Winter), 1.2, 0.2),
			},
		},
	}}
}
