// Package taxonomy defines the closed label sets used across classification:
// the 17 industry categories, the per-industry subcategory lists, and the
// campaign types. These values are frozen for storage compatibility; adding a
// label is fine, renaming or removing one requires a data migration.
package taxonomy

// Industry is one of the 17 top-level industry categories.
type Industry string

const (
	IndustryApparel       Industry = "Apparel & Accessories"
	IndustryBabyKids      Industry = "Baby & Kids"
	IndustryBeauty        Industry = "Beauty & Personal Care"
	IndustryBooksArt      Industry = "Books, Art & Stationery"
	IndustryBusinessB2B   Industry = "Business & B2B Retail"
	IndustryElectronics   Industry = "Electronics & Tech"
	IndustryEntertainment Industry = "Entertainment"
	IndustryFinance       Industry = "Finance & Fintech"
	IndustryFoodBeverage  Industry = "Food & Beverage"
	IndustryGeneral       Industry = "General / Department Store"
	IndustryGifts         Industry = "Gifts & Lifestyle"
	IndustryHealth        Industry = "Health, Fitness & Wellness"
	IndustryHomeLiving    Industry = "Home & Living"
	IndustryLuxury        Industry = "Luxury & High-End Goods"
	IndustryPets          Industry = "Pets"
	IndustryToolsAuto     Industry = "Tools, Auto & DIY"
	IndustryTravel        Industry = "Travel & Outdoors"
)

// SubcategoryOthers is the catch-all subcategory every industry carries.
const SubcategoryOthers = "Others"

// Industries lists every valid industry in stable (alphabetical) order.
func Industries() []Industry {
	return []Industry{
		IndustryApparel,
		IndustryBabyKids,
		IndustryBeauty,
		IndustryBooksArt,
		IndustryBusinessB2B,
		IndustryElectronics,
		IndustryEntertainment,
		IndustryFinance,
		IndustryFoodBeverage,
		IndustryGeneral,
		IndustryGifts,
		IndustryHealth,
		IndustryHomeLiving,
		IndustryLuxury,
		IndustryPets,
		IndustryToolsAuto,
		IndustryTravel,
	}
}

// subcategories maps each industry to its allowed subcategory list.
var subcategories = map[Industry][]string{
	IndustryApparel: {
		"Activewear / Athleisure", "Bags & Handbags", "Footwear",
		"Hats & Accessories", "Intimates / Lingerie", "Jewelry",
		"Men's Clothing", "Outerwear", "Sunglasses & Eyewear",
		"Swimwear", "Unisex / Gender-Neutral Clothing", "Watches",
		"Women's Clothing", SubcategoryOthers,
	},
	IndustryBabyKids: {
		"Baby Gear", "Clothing", "Diapers & Hygiene", "Educational Products",
		"Feeding & Nursing", "Kids' Furniture", "Toys & Games", SubcategoryOthers,
	},
	IndustryBeauty: {
		"Bath & Body", "Beauty Tools & Devices", "Clean / Organic Beauty",
		"Fragrance / Perfume", "Grooming / Shaving", "Haircare",
		"Makeup / Cosmetics", "Oral Care", "Skincare", SubcategoryOthers,
	},
	IndustryBooksArt: {
		"Art Supplies", "Crafting & DIY Kits", "Educational / Academic",
		"Fiction / Non-Fiction", "Journals & Planners",
		"Notebooks / Writing Tools", SubcategoryOthers,
	},
	IndustryBusinessB2B: {
		"Corporate Gifts", "Office Supplies", "Packaging & Fulfillment",
		"Promotional Products", SubcategoryOthers,
	},
	IndustryElectronics: {
		"Cameras & Photography", "Computers & Laptops", "Drones & Gadgets",
		"Gaming Consoles & Accessories", "Headphones & Audio Gear",
		"Smart Home Devices", "Smartphones", "Smartwatches & Wearables",
		"Tablets & Accessories", SubcategoryOthers,
	},
	IndustryEntertainment: {
		"Streaming", "Events & Ticketing", "Music", "Gaming", SubcategoryOthers,
	},
	IndustryFinance: {
		"Payments", "Banking", "Insurance", "Investment", "Credit Cards", SubcategoryOthers,
	},
	IndustryFoodBeverage: {
		"Alcohol", "Beverages (Coffee, Tea, Juices)", "Cooking Ingredients & Spices",
		"Meal Kits", "Pantry Staples", "Snacks & Treats", "Specialty Foods",
		"Subscription Boxes", SubcategoryOthers,
	},
	IndustryGeneral: {
		"Multi-Category Retail", "Online Marketplaces", "Flash Sale Retailers", SubcategoryOthers,
	},
	IndustryGifts: {
		"Eco-Friendly / Sustainable Products", "Gift Cards",
		"Hobby & Craft Supplies", "Novelty & Fun Items", "Personalized Gifts",
		"Seasonal / Holiday Gifts", "Subscription Boxes", SubcategoryOthers,
	},
	IndustryHealth: {
		"Fitness Equipment", "Mental Health / Meditation",
		"Personal Health Devices", "Supplements", "Vitamins & Nutrition",
		"Wearable Fitness Trackers", "Yoga & Recovery Gear", SubcategoryOthers,
	},
	IndustryHomeLiving: {
		"Bedding & Bath", "Cleaning Supplies", "Furniture", "Home Décor",
		"Home Improvement", "Kitchen & Dining", "Lawn & Garden", "Lighting",
		"Rugs & Curtains", "Smart Home Devices", "Storage & Organization", SubcategoryOthers,
	},
	IndustryLuxury: {
		"Collectibles & Limited Editions", "Designer Fashion", "Fine Jewelry",
		"Premium Skincare", SubcategoryOthers,
	},
	IndustryPets: {
		"Pet Food", "Pet Apparel", "Pet Grooming", "Pet Health / Supplements",
		"Pet Toys", "Accessories", "Beds & Crates", SubcategoryOthers,
	},
	IndustryToolsAuto: {
		"Automotive Accessories", "Car Cleaning & Care", "Hand Tools",
		"Hardware Supplies", "Home DIY Kits", "Lawn & Garden", "Power Tools", SubcategoryOthers,
	},
	IndustryTravel: {
		"Camping & Hiking Gear", "Coolers / Hydration",
		"Luggage & Travel Accessories", "Outdoor Furniture",
		"Travel Skincare & Essentials", "Beachwear & Travel Apparel", SubcategoryOthers,
	},
}

// ValidIndustry reports whether s is one of the closed industry labels.
func ValidIndustry(s string) bool {
	_, ok := subcategories[Industry(s)]
	return ok
}

// Subcategories returns the allowed subcategory list for an industry.
// Unknown industries get a single-element list containing "Others".
func Subcategories(ind Industry) []string {
	subs, ok := subcategories[ind]
	if !ok {
		return []string{SubcategoryOthers}
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// ValidSubcategory reports whether sub is allowed for the given industry.
func ValidSubcategory(ind Industry, sub string) bool {
	for _, s := range subcategories[ind] {
		if s == sub {
			return true
		}
	}
	return false
}

// CoerceSubcategory returns sub if it is valid for the industry, otherwise "Others".
func CoerceSubcategory(ind Industry, sub string) string {
	if ValidSubcategory(ind, sub) {
		return sub
	}
	return SubcategoryOthers
}

// CampaignType is one of the closed campaign intent labels.
type CampaignType string

const (
	CampaignSale            CampaignType = "Sale"
	CampaignWelcome         CampaignType = "Welcome"
	CampaignAbandonedCart   CampaignType = "Abandoned Cart"
	CampaignNewsletter      CampaignType = "Newsletter"
	CampaignNewArrival      CampaignType = "New Arrival"
	CampaignReengagement    CampaignType = "Re-engagement"
	CampaignOrderUpdate     CampaignType = "Order Update"
	CampaignFestive         CampaignType = "Festive"
	CampaignLoyalty         CampaignType = "Loyalty"
	CampaignFeedback        CampaignType = "Feedback"
	CampaignBackInStock     CampaignType = "Back in Stock"
	CampaignEducational     CampaignType = "Educational"
	CampaignProductShowcase CampaignType = "Product Showcase"
	CampaignPromotional     CampaignType = "Promotional"
	CampaignConfirmation    CampaignType = "Confirmation"
)

// CampaignTypes lists every valid campaign type.
func CampaignTypes() []CampaignType {
	return []CampaignType{
		CampaignSale,
		CampaignWelcome,
		CampaignAbandonedCart,
		CampaignNewsletter,
		CampaignNewArrival,
		CampaignReengagement,
		CampaignOrderUpdate,
		CampaignFestive,
		CampaignLoyalty,
		CampaignFeedback,
		CampaignBackInStock,
		CampaignEducational,
		CampaignProductShowcase,
		CampaignPromotional,
		CampaignConfirmation,
	}
}

// ValidCampaignType reports whether s is one of the closed campaign labels.
func ValidCampaignType(s string) bool {
	for _, c := range CampaignTypes() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// LegacyIndustryRenames maps retired industry names to their current
// equivalents. Stored rows carrying an old name are renamed in place during
// batch reclassification.
var LegacyIndustryRenames = map[string]Industry{
	"Women's Fashion":       IndustryApparel,
	"Men's Fashion":         IndustryApparel,
	"Food & Beverages":      IndustryFoodBeverage,
	"Travel & Hospitality":  IndustryTravel,
	"Electronics & Gadgets": IndustryElectronics,
	"Health & Wellness":     IndustryHealth,
	"Kids & Baby":           IndustryBabyKids,
	"Sports & Fitness":      IndustryApparel,
	"General Retail":        IndustryGeneral,
}
