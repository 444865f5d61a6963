package repositories

import "kgs-gunshop/models"

var seedProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Glock 19 Gen 5",
		Description: "Compact 9mm pistol, the standard for concealed carry and duty use alike.",
		Price:       "599.99",
		Category:    "Handguns",
		Image:       "/images/products/glock-19-gen5.jpg",
		Specifications: []string{
			"Caliber: 9mm Luger",
			"Capacity: 15+1",
			"Barrel Length: 4.02 in",
			"Weight: 23.63 oz",
		},
		InStock: true,
	},
	{
		ID:          "2",
		Name:        "Smith & Wesson M&P Shield Plus",
		Description: "Micro-compact 9mm with a flat-face trigger and 13-round capacity.",
		Price:       "499.99",
		Category:    "Handguns",
		Image:       "/images/products/sw-shield-plus.jpg",
		Specifications: []string{
			"Caliber: 9mm Luger",
			"Capacity: 10+1 / 13+1",
			"Barrel Length: 3.1 in",
			"Weight: 20.2 oz",
		},
		InStock: true,
	},
	{
		ID:          "3",
		Name:        "Sig Sauer P365",
		Description: "Every-day-carry favorite. High capacity in a true micro-compact frame.",
		Price:       "649.99",
		Category:    "Handguns",
		Image:       "/images/products/sig-p365.jpg",
		Specifications: []string{
			"Caliber: 9mm Luger",
			"Capacity: 10+1",
			"Barrel Length: 3.1 in",
			"Weight: 17.8 oz",
		},
		InStock: true,
	},
	{
		ID:          "4",
		Name:        "Ruger 10/22 Carbine",
		Description: "The classic semi-auto .22 rimfire rifle. Ideal first rifle and trainer.",
		Price:       "349.99",
		Category:    "Rifles",
		Image:       "/images/products/ruger-1022.jpg",
		Specifications: []string{
			"Caliber: .22 LR",
			"Capacity: 10",
			"Barrel Length: 18.5 in",
			"Weight: 5 lb",
		},
		InStock: true,
	},
	{
		ID:          "5",
		Name:        "Smith & Wesson M&P 15 Sport II",
		Description: "Entry-level AR-15 platform rifle with forged upper and lower receivers.",
		Price:       "799.99",
		Category:    "Rifles",
		Image:       "/images/products/mp15-sport2.jpg",
		Specifications: []string{
			"Caliber: 5.56 NATO / .223 Rem",
			"Capacity: 30",
			"Barrel Length: 16 in",
			"Weight: 6.5 lb",
		},
		InStock: true,
	},
	{
		ID:          "6",
		Name:        "Henry Golden Boy",
		Description: "Lever-action .22 with brass receiver and octagon barrel. An heirloom piece.",
		Price:       "649.99",
		Category:    "Rifles",
		Image:       "/images/products/henry-golden-boy.jpg",
		Specifications: []string{
			"Caliber: .22 S/L/LR",
			"Capacity: 16 (LR)",
			"Barrel Length: 20 in",
			"Weight: 6.75 lb",
		},
		InStock: false,
	},
	{
		ID:          "7",
		Name:        "Mossberg 500 Field",
		Description: "Pump-action 12 gauge trusted for decades in the field and at home.",
		Price:       "449.99",
		Category:    "Shotguns",
		Image:       "/images/products/mossberg-500.jpg",
		Specifications: []string{
			"Gauge: 12",
			"Capacity: 5+1",
			"Barrel Length: 28 in",
			"Weight: 7.25 lb",
		},
		InStock: true,
	},
	{
		ID:          "8",
		Name:        "Remington 870 Fieldmaster",
		Description: "The benchmark pump shotgun, back in production and better finished than ever.",
		Price:       "549.99",
		Category:    "Shotguns",
		Image:       "/images/products/remington-870.jpg",
		Specifications: []string{
			"Gauge: 12",
			"Capacity: 4+1",
			"Barrel Length: 28 in",
			"Weight: 7.5 lb",
		},
		InStock: true,
	},
	{
		ID:          "9",
		Name:        "Federal American Eagle 9mm 115gr FMJ",
		Description: "Range-grade 9mm ball ammunition, 500-round case.",
		Price:       "149.99",
		Category:    "Ammunition",
		Image:       "/images/products/federal-9mm-case.jpg",
		Specifications: []string{
			"Caliber: 9mm Luger",
			"Bullet: 115gr FMJ",
			"Rounds: 500",
			"Muzzle Velocity: 1180 fps",
		},
		InStock: true,
	},
	{
		ID:          "10",
		Name:        "CCI Mini-Mag .22 LR",
		Description: "Reliable high-velocity rimfire ammunition, 100-round box.",
		Price:       "9.99",
		Category:    "Ammunition",
		Image:       "/images/products/cci-minimag.jpg",
		Specifications: []string{
			"Caliber: .22 LR",
			"Bullet: 40gr CPRN",
			"Rounds: 100",
			"Muzzle Velocity: 1235 fps",
		},
		InStock: true,
	},
	{
		ID:          "11",
		Name:        "Vortex Crossfire II 3-9x40",
		Description: "Clear, rugged hunting scope with the VIP lifetime warranty.",
		Price:       "249.99",
		Category:    "Optics",
		Image:       "/images/products/vortex-crossfire2.jpg",
		Specifications: []string{
			"Magnification: 3-9x",
			"Objective: 40mm",
			"Reticle: Dead-Hold BDC",
			"Tube: 1 in",
		},
		InStock: true,
	},
	{
		ID:          "12",
		Name:        "Magpul PMAG 30 AR/M4 GEN M3",
		Description: "The standard 30-round 5.56 polymer magazine.",
		Price:       "16.99",
		Category:    "Accessories",
		Image:       "/images/products/magpul-pmag30.jpg",
		Specifications: []string{
			"Caliber: 5.56 NATO / .223 Rem",
			"Capacity: 30",
			"Material: Polymer",
		},
		InStock: true,
	},
}
