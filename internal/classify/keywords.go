package classify

import "github.com/mailprism/mailprism/internal/taxonomy"

// industryKeywords holds the weighted vocabulary for content-based industry
// scoring. Weights run 1 (weak hint) to 3 (near-diagnostic). The values were
// tuned empirically against a production mailbox corpus; treat them as
// recalibratable defaults, not constants.
var industryKeywords = map[taxonomy.Industry]map[string]int{
	taxonomy.IndustryApparel: {
		"apparel": 3, "clothing": 2, "fashion": 2, "dress": 2, "denim": 2,
		"jeans": 2, "outfit": 2, "wardrobe": 2, "sneaker": 2, "sneakers": 2,
		"footwear": 3, "shoes": 2, "jewelry": 3, "jewellery": 3, "lingerie": 3,
		"saree": 2, "kurta": 2, "hoodie": 2, "tee": 1, "style": 1, "wear": 1,
	},
	taxonomy.IndustryBabyKids: {
		"baby": 3, "toddler": 3, "infant": 3, "diaper": 3, "diapers": 3,
		"stroller": 3, "nursery": 2, "kids": 2, "toys": 2, "playtime": 2,
	},
	taxonomy.IndustryBeauty: {
		"skincare": 3, "makeup": 3, "serum": 3, "lipstick": 3, "moisturizer": 3,
		"cosmetics": 3, "fragrance": 2, "perfume": 2, "shampoo": 2, "beauty": 2,
		"spf": 2, "sunscreen": 2, "cleanser": 2, "glow": 1, "hair": 1,
	},
	taxonomy.IndustryBooksArt: {
		"stationery": 3, "novel": 3, "book": 2, "books": 2, "reading": 2,
		"journal": 2, "notebook": 2, "planner": 2, "sketch": 2, "author": 2,
		"art supplies": 3,
	},
	taxonomy.IndustryBusinessB2B: {
		"wholesale": 3, "b2b": 3, "procurement": 3, "bulk order": 3,
		"office supplies": 3, "corporate": 2, "enterprise": 2, "crm": 2,
		"webinar": 1,
	},
	taxonomy.IndustryElectronics: {
		"laptop": 3, "smartphone": 3, "headphones": 3, "earbuds": 3,
		"smartwatch": 3, "electronics": 3, "gadget": 2, "gadgets": 2,
		"charger": 2, "gaming": 2, "console": 2, "camera": 2, "tablet": 2,
		"tech": 1,
	},
	taxonomy.IndustryEntertainment: {
		"streaming": 3, "concert": 3, "playlist": 3, "movie": 2, "tickets": 2,
		"episode": 2, "premiere": 2, "music": 1,
	},
	taxonomy.IndustryFinance: {
		"credit card": 3, "loan": 3, "investment": 3, "insurance": 3,
		"mutual fund": 3, "upi": 3, "bank": 2, "banking": 2, "wallet": 2,
		"payment": 2, "emi": 2, "cashback": 1,
	},
	taxonomy.IndustryFoodBeverage: {
		"grocery": 3, "coffee": 3, "recipe": 2, "meal": 2, "snack": 2,
		"snacks": 2, "tea": 2, "restaurant": 2, "pizza": 2, "chocolate": 2,
		"wine": 2, "brew": 2, "dining": 2, "delivery": 1, "organic": 1,
	},
	taxonomy.IndustryGeneral: {
		"marketplace": 3, "superstore": 3, "department store": 3,
		"bestsellers": 1, "categories": 1, "everything you need": 2,
	},
	taxonomy.IndustryGifts: {
		"gifting": 3, "hamper": 3, "keepsake": 3, "gift": 2, "gifts": 2,
		"gift card": 2, "personalized": 2, "greeting": 2,
	},
	taxonomy.IndustryHealth: {
		"workout": 3, "fitness": 3, "protein": 3, "supplement": 3,
		"supplements": 3, "yoga": 3, "vitamins": 3, "nutrition": 3,
		"wellness": 2, "gym": 2, "recovery": 1, "sleep": 1,
	},
	taxonomy.IndustryHomeLiving: {
		"furniture": 3, "sofa": 3, "bedding": 3, "mattress": 3, "cookware": 3,
		"decor": 3, "kitchen": 2, "candle": 2, "rug": 2, "garden": 2,
		"lighting": 2, "home": 1,
	},
	taxonomy.IndustryLuxury: {
		"luxury": 3, "couture": 3, "atelier": 3, "fine jewelry": 3,
		"designer": 2, "bespoke": 2, "cashmere": 2, "handcrafted": 1,
	},
	taxonomy.IndustryPets: {
		"pet": 3, "dog": 3, "cat": 3, "puppy": 3, "kitten": 3, "kibble": 3,
		"grooming": 2, "litter": 2, "paw": 2, "vet": 2,
	},
	taxonomy.IndustryToolsAuto: {
		"automotive": 3, "drill": 3, "wrench": 3, "engine oil": 3, "tools": 2,
		"garage": 2, "diy": 2, "hardware": 2, "detailing": 2, "car": 1,
	},
	taxonomy.IndustryTravel: {
		"travel": 3, "flight": 3, "hotel": 3, "luggage": 3, "vacation": 3,
		"getaway": 3, "camping": 3, "hiking": 3, "itinerary": 3, "trip": 2,
		"resort": 2, "adventure": 2, "explore": 1,
	},
}

// Campaign threshold tiers, per intent specificity. Transactional types fire
// on thin but unmistakable signal; the generic catch-alls need a pile of
// marketing vocabulary before they are trusted.
const (
	thresholdTransactional = 2
	thresholdMid           = 3
	thresholdGeneric       = 5
)

// campaignRule is one campaign type's vocabulary and acceptance threshold.
type campaignRule struct {
	Type      taxonomy.CampaignType
	Threshold int
	Keywords  []string
}

// campaignRules is ordered most-specific-intent first. The order is the
// priority used for tie-breaking: generic vocabulary outscores rare
// transactional keywords, so priority gets to override raw score.
var campaignRules = []campaignRule{
	{taxonomy.CampaignConfirmation, thresholdTransactional, []string{
		"confirmation", "confirm your", "is confirmed", "verify your email",
		"activate your account", "booking confirmed", "order confirmed",
		"subscription confirmed", "verify",
	}},
	{taxonomy.CampaignOrderUpdate, thresholdTransactional, []string{
		"order update", "your order", "shipped", "shipping update",
		"out for delivery", "delivered", "tracking number", "track your",
		"dispatched", "on its way", "order status", "invoice",
	}},
	{taxonomy.CampaignAbandonedCart, thresholdTransactional, []string{
		"your cart", "left in your cart", "still in your cart",
		"forgot something", "complete your purchase", "cart is waiting",
		"left behind", "checkout now", "items are waiting",
	}},
	{taxonomy.CampaignWelcome, thresholdTransactional, []string{
		"welcome", "thanks for joining", "thanks for signing up",
		"welcome aboard", "nice to meet you", "you're in", "get started",
	}},
	{taxonomy.CampaignFeedback, thresholdTransactional, []string{
		"feedback", "review", "survey", "rate your", "how did we do",
		"tell us what you think", "your opinion", "rating",
	}},
	{taxonomy.CampaignBackInStock, thresholdTransactional, []string{
		"back in stock", "restocked", "available again", "it's back",
		"back by popular demand",
	}},
	{taxonomy.CampaignReengagement, thresholdMid, []string{
		"we miss you", "come back", "it's been a while", "long time no see",
		"where have you been", "still interested", "win you back",
	}},
	{taxonomy.CampaignSale, thresholdMid, []string{
		"sale", "% off", "discount", "deal", "deals", "save", "clearance",
		"offer", "flat", "bogo", "coupon", "promo code", "price drop",
		"lowest price", "mega sale", "flash sale",
	}},
	{taxonomy.CampaignFestive, thresholdMid, []string{
		"diwali", "christmas", "holiday", "black friday", "cyber monday",
		"new year", "halloween", "valentine", "eid", "thanksgiving",
		"festive", "rakhi", "navratri", "holi",
	}},
	{taxonomy.CampaignLoyalty, thresholdMid, []string{
		"points", "rewards", "loyalty", "membership", "vip",
		"exclusive access", "redeem", "perks", "member",
	}},
	{taxonomy.CampaignNewArrival, thresholdMid, []string{
		"new arrival", "new arrivals", "just launched", "just dropped",
		"new collection", "just landed", "new in", "introducing",
		"fresh drop", "now live",
	}},
	{taxonomy.CampaignEducational, thresholdMid, []string{
		"how to", "guide", "tips", "tutorial", "did you know", "masterclass",
		"step by step", "learn",
	}},
	{taxonomy.CampaignNewsletter, thresholdMid, []string{
		"newsletter", "digest", "this week", "weekly update",
		"monthly roundup", "latest news", "in case you missed", "icymi",
	}},
	// Generic catch-alls sit last and carry the highest threshold.
	{taxonomy.CampaignProductShowcase, thresholdGeneric, []string{
		"shop", "collection", "explore", "discover", "featuring",
		"spotlight", "lookbook", "curated", "trending",
	}},
	{taxonomy.CampaignPromotional, thresholdGeneric, []string{
		"don't miss", "hurry", "last chance", "ends tonight", "limited",
		"special", "just for you", "unlock", "grab", "act now", "only today",
	}},
}
