package catalog

import "github.com/shopspring/decimal"

func amt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func nigeriaTable() *Table {
	cats := []Category{
		{ID: "birthday", Name: "Birthday Shoot"},
		{ID: "graduation", Name: "Graduation Shoot"},
		{ID: "portrait", Name: "Studio Portrait"},
		{ID: "maternity", Name: "Maternity Shoot"},
		{ID: "family", Name: "Family & Friends", Group: FlatSurcharge{PerExtraPerson: amt(2000)}},
	}
	pkgs := []Package{
		{ID: "birthday-basic", Category: "birthday", Name: "Birthday Basic", Price: amt(4500), Outfits: 1, EditedImages: 3},
		{ID: "birthday-standard", Category: "birthday", Name: "Birthday Standard", Price: amt(8500), Outfits: 2, EditedImages: 6},
		{ID: "birthday-premium", Category: "birthday", Name: "Birthday Premium", Price: amt(15000), Outfits: 3, EditedImages: 10, Description: "Includes one custom background"},
		{ID: "graduation-basic", Category: "graduation", Name: "Graduation Basic", Price: amt(6000), Outfits: 1, EditedImages: 4},
		{ID: "graduation-premium", Category: "graduation", Name: "Graduation Premium", Price: amt(12000), Outfits: 2, EditedImages: 8},
		{ID: "portrait-basic", Category: "portrait", Name: "Portrait Basic", Price: amt(3500), Outfits: 1, EditedImages: 2},
		{ID: "portrait-pro", Category: "portrait", Name: "Portrait Pro", Price: amt(7000), Outfits: 2, EditedImages: 5},
		{ID: "maternity-standard", Category: "maternity", Name: "Maternity Standard", Price: amt(10000), Outfits: 2, EditedImages: 6},
		{ID: "family-basic", Category: "family", Name: "Family Basic", Price: amt(10000), Outfits: 1, EditedImages: 5, Description: "Price covers two people"},
		{ID: "family-premium", Category: "family", Name: "Family Premium", Price: amt(18000), Outfits: 2, EditedImages: 10, Description: "Price covers two people"},
	}
	addOns := []AddOn{
		{ID: "extra-image", Name: "Extra edited image", Price: amt(500)},
		{ID: "extra-outfit", Name: "Extra outfit", Price: amt(2000)},
		{ID: "makeup", Name: "Makeup artist", Price: amt(5000)},
		{ID: "hairstyle", Name: "Hair styling", Price: amt(3000)},
		{ID: "custom-background", Name: "Custom background", Price: amt(1500)},
		{ID: "express-delivery", Name: "48-hour delivery", Price: amt(3000)},
		{ID: "photo-frame", Name: "Framed print", Price: amt(6500)},
	}
	return NewTable(CountryNigeria, "NGN", cats, pkgs, addOns)
}

func ghanaTable() *Table {
	cats := []Category{
		{ID: "birthday", Name: "Birthday Shoot"},
		{ID: "graduation", Name: "Graduation Shoot"},
		{ID: "portrait", Name: "Studio Portrait"},
		{ID: "family", Name: "Family & Friends", Group: TableSurcharge{
			Steps: map[int]decimal.Decimal{
				3: amt(60),
				4: amt(110),
				5: amt(150),
				6: amt(190),
			},
			Max:               6,
			OverflowPerPerson: amt(35),
		}},
	}
	pkgs := []Package{
		{ID: "birthday-basic", Category: "birthday", Name: "Birthday Basic", Price: amt(250), Outfits: 1, EditedImages: 3},
		{ID: "birthday-standard", Category: "birthday", Name: "Birthday Standard", Price: amt(450), Outfits: 2, EditedImages: 6},
		{ID: "birthday-premium", Category: "birthday", Name: "Birthday Premium", Price: amt(800), Outfits: 3, EditedImages: 10},
		{ID: "graduation-basic", Category: "graduation", Name: "Graduation Basic", Price: amt(300), Outfits: 1, EditedImages: 4},
		{ID: "graduation-premium", Category: "graduation", Name: "Graduation Premium", Price: amt(650), Outfits: 2, EditedImages: 8},
		{ID: "portrait-basic", Category: "portrait", Name: "Portrait Basic", Price: amt(200), Outfits: 1, EditedImages: 2},
		{ID: "family-basic", Category: "family", Name: "Family Basic", Price: amt(500), Outfits: 1, EditedImages: 5, Description: "Price covers two people"},
		{ID: "family-premium", Category: "family", Name: "Family Premium", Price: amt(900), Outfits: 2, EditedImages: 10, Description: "Price covers two people"},
	}
	addOns := []AddOn{
		{ID: "extra-image", Name: "Extra edited image", Price: amt(25)},
		{ID: "extra-outfit", Name: "Extra outfit", Price: amt(80)},
		{ID: "makeup", Name: "Makeup artist", Price: amt(200)},
		{ID: "hairstyle", Name: "Hair styling", Price: amt(120)},
		{ID: "custom-background", Name: "Custom background", Price: amt(60)},
		{ID: "express-delivery", Name: "48-hour delivery", Price: amt(100)},
	}
	return NewTable(CountryGhana, "GHS", cats, pkgs, addOns)
}
