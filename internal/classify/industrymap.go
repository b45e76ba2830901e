package classify

import (
	"github.com/mailprism/mailprism/internal/taxonomy"
	"github.com/mailprism/mailprism/internal/textnorm"
)

// IndustryMapping is one brand's curated industry assignment.
type IndustryMapping struct {
	Industry    taxonomy.Industry
	Subcategory string
}

// IndustryMap is the brand → industry mapping table, keyed by normalized
// brand key. Loaded once at startup and injected; never mutated afterwards.
type IndustryMap struct {
	entries map[string]IndustryMapping
}

// NewIndustryMap builds a map from display-form brand names. Keys are
// normalized so "Pottery Barn Sale" and "pottery barn" land on one entry.
func NewIndustryMap(entries map[string]IndustryMapping) *IndustryMap {
	m := &IndustryMap{entries: make(map[string]IndustryMapping, len(entries))}
	for name, im := range entries {
		im.Subcategory = taxonomy.CoerceSubcategory(im.Industry, im.Subcategory)
		m.entries[textnorm.NormalizeBrandKey(name)] = im
	}
	return m
}

// Exact looks up an already-normalized brand key.
func (m *IndustryMap) Exact(key string) (IndustryMapping, bool) {
	im, ok := m.entries[key]
	return im, ok
}

// Fuzzy finds the mapping whose key best matches the given normalized brand
// key. Three tiers qualify: punctuation-stripped equality, substring in
// either direction (both sides at least minSubstring runes), and a shared
// significant word longer than wordMinLen. Among all hits the longest, most
// specific, table key wins.
func (m *IndustryMap) Fuzzy(key string, minSubstring, wordMinLen int) (IndustryMapping, bool) {
	keyPunct := textnorm.StripPunct(key)
	keyWords := textnorm.SignificantWords(key, wordMinLen)

	bestLen := -1
	var best IndustryMapping
	for k, im := range m.entries {
		if !fuzzyHit(key, keyPunct, keyWords, k, minSubstring, wordMinLen) {
			continue
		}
		if len(k) > bestLen {
			bestLen = len(k)
			best = im
		}
	}
	return best, bestLen >= 0
}

func fuzzyHit(key, keyPunct string, keyWords []string, tableKey string, minSubstring, wordMinLen int) bool {
	if keyPunct != "" && keyPunct == textnorm.StripPunct(tableKey) {
		return true
	}
	if len(key) >= minSubstring && len(tableKey) >= minSubstring {
		if contains(key, tableKey) || contains(tableKey, key) {
			return true
		}
	}
	for _, w := range textnorm.SignificantWords(tableKey, wordMinLen) {
		for _, kw := range keyWords {
			if w == kw {
				return true
			}
		}
	}
	return false
}

func contains(haystack, needle string) bool {
	return needle != "" && len(needle) <= len(haystack) && indexOf(haystack, needle) >= 0
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

// DefaultIndustryMap returns the shipped brand → industry table, curated from
// the brands observed in production mailboxes.
func DefaultIndustryMap() *IndustryMap {
	a := taxonomy.IndustryApparel
	return NewIndustryMap(map[string]IndustryMapping{
		// Luxury & High-End Goods
		"Net-A-Porter": {taxonomy.IndustryLuxury, "Designer Fashion"},
		"Mytheresa":    {taxonomy.IndustryLuxury, "Designer Fashion"},
		"Luisaviaroma": {taxonomy.IndustryLuxury, "Designer Fashion"},
		"Balenciaga":   {taxonomy.IndustryLuxury, "Designer Fashion"},
		"Gucci":        {taxonomy.IndustryLuxury, "Designer Fashion"},
		"Versace":      {taxonomy.IndustryLuxury, "Designer Fashion"},
		"Shopbop":      {taxonomy.IndustryLuxury, "Designer Fashion"},

		// Apparel & Accessories
		"Nicobar":              {a, "Women's Clothing"},
		"Reformation":          {a, "Women's Clothing"},
		"Shop Lune":            {a, "Women's Clothing"},
		"No Nasties":           {a, "Women's Clothing"},
		"Peeli Dori":           {a, "Women's Clothing"},
		"Aashni + Co":          {a, "Women's Clothing"},
		"Ka-Sha":               {a, "Women's Clothing"},
		"Payal Singhal":        {a, "Women's Clothing"},
		"Ogaan":                {a, "Women's Clothing"},
		"Manish Malhotra":      {a, "Women's Clothing"},
		"Khara Kapas":          {a, "Women's Clothing"},
		"Tilfi":                {a, "Women's Clothing"},
		"Ganni":                {a, "Women's Clothing"},
		"Mango":                {a, "Women's Clothing"},
		"Zara":                 {a, "Women's Clothing"},
		"House Of Masaba":      {a, "Women's Clothing"},
		"March Tee":            {a, "Men's Clothing"},
		"Bombay Shirt Company": {a, "Men's Clothing"},
		"Proper Cloth":         {a, "Men's Clothing"},
		"Uniqlo":               {a, "Unisex / Gender-Neutral Clothing"},
		"Calvin Klein":         {a, "Unisex / Gender-Neutral Clothing"},
		"Gap":                  {a, "Unisex / Gender-Neutral Clothing"},
		"Bombas":               {a, "Unisex / Gender-Neutral Clothing"},
		"Meundies":             {a, "Intimates / Lingerie"},
		"Caratlane":            {a, "Jewelry"},
		"Tribe Amrapali":       {a, "Jewelry"},
		"Tanishq":              {a, "Jewelry"},
		"Rothy's":              {a, "Footwear"},
		"Allbirds":             {a, "Footwear"},
		"Outdoor Voices":       {a, "Activewear / Athleisure"},
		"Alo":                  {a, "Activewear / Athleisure"},
		"Cava Athleisure":      {a, "Activewear / Athleisure"},
		"Fossil":               {a, "Watches"},
		"Warby Parker":         {a, "Sunglasses & Eyewear"},
		"Myntra":               {a, "Women's Clothing"},

		// Beauty & Personal Care
		"Bobbi Brown Cosmetics":    {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Nykaa":                    {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Nyx Professional Makeup":  {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Urban Decay":              {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Givenchy":                 {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Mac Cosmetics":            {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Anastasia Beverly Hills":  {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Sephora":                  {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Revlon":                   {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Ilia":                     {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Typsy Beauty":             {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Kiehl's Since 1851":       {taxonomy.IndustryBeauty, "Skincare"},
		"Innisfree":                {taxonomy.IndustryBeauty, "Skincare"},
		"Cerave":                   {taxonomy.IndustryBeauty, "Skincare"},
		"Dot & Key":                {taxonomy.IndustryBeauty, "Skincare"},
		"D'You":                    {taxonomy.IndustryBeauty, "Skincare"},
		"Forest Essentials":        {taxonomy.IndustryBeauty, "Skincare"},
		"Foxtale":                  {taxonomy.IndustryBeauty, "Skincare"},
		"Madison Reed":             {taxonomy.IndustryBeauty, "Haircare"},
		"Mamaearth":                {taxonomy.IndustryBeauty, "Clean / Organic Beauty"},
		"Purplle":                  {taxonomy.IndustryBeauty, "Makeup / Cosmetics"},
		"Quip":                     {taxonomy.IndustryBeauty, "Oral Care"},

		// Food & Beverage
		"Zomato":           {taxonomy.IndustryFoodBeverage, taxonomy.SubcategoryOthers},
		"Swiggy":           {taxonomy.IndustryFoodBeverage, taxonomy.SubcategoryOthers},
		"Daily Harvest":    {taxonomy.IndustryFoodBeverage, "Meal Kits"},
		"Sleepy Owl Coffee": {taxonomy.IndustryFoodBeverage, "Beverages (Coffee, Tea, Juices)"},
		"Teabox":           {taxonomy.IndustryFoodBeverage, "Beverages (Coffee, Tea, Juices)"},
		"BigBasket":        {taxonomy.IndustryFoodBeverage, "Pantry Staples"},

		// Pets
		"Supertails":   {taxonomy.IndustryPets, taxonomy.SubcategoryOthers},
		"Farmer's Dog": {taxonomy.IndustryPets, "Pet Food"},
		"Native Pet":   {taxonomy.IndustryPets, "Pet Food"},

		// Home & Living
		"Burrow":          {taxonomy.IndustryHomeLiving, "Furniture"},
		"Interior Define": {taxonomy.IndustryHomeLiving, "Furniture"},
		"Pottery Barn":    {taxonomy.IndustryHomeLiving, "Home Décor"},
		"House Of Things": {taxonomy.IndustryHomeLiving, "Home Décor"},
		"Address Home":    {taxonomy.IndustryHomeLiving, "Home Décor"},
		"Vibecrafts":      {taxonomy.IndustryHomeLiving, "Home Décor"},
		"Phool":           {taxonomy.IndustryHomeLiving, "Home Décor"},
		"Anthroliving":    {taxonomy.IndustryHomeLiving, "Home Décor"},
		"Brooklinen":      {taxonomy.IndustryHomeLiving, "Bedding & Bath"},
		"Sleepycat":       {taxonomy.IndustryHomeLiving, "Bedding & Bath"},
		"Eve Sleep":       {taxonomy.IndustryHomeLiving, "Bedding & Bath"},
		"Zevo Insect":     {taxonomy.IndustryHomeLiving, "Cleaning Supplies"},

		// Health, Fitness & Wellness
		"Ultrahuman":  {taxonomy.IndustryHealth, "Wearable Fitness Trackers"},
		"Strava":      {taxonomy.IndustryHealth, "Wearable Fitness Trackers"},
		"Apollo 24|7": {taxonomy.IndustryHealth, "Personal Health Devices"},
		"Ritual":      {taxonomy.IndustryHealth, "Vitamins & Nutrition"},

		// Electronics & Tech
		"Boat Lifestyle": {taxonomy.IndustryElectronics, "Headphones & Audio Gear"},
		"Gabit":          {taxonomy.IndustryElectronics, "Smartwatches & Wearables"},
		"Croma":          {taxonomy.IndustryElectronics, taxonomy.SubcategoryOthers},

		// Travel & Outdoors
		"All Accor": {taxonomy.IndustryTravel, taxonomy.SubcategoryOthers},
		"Mokobara":  {taxonomy.IndustryTravel, "Luggage & Travel Accessories"},
		"Stayvista": {taxonomy.IndustryTravel, taxonomy.SubcategoryOthers},
		"Cotopaxi":  {taxonomy.IndustryTravel, "Camping & Hiking Gear"},

		// Finance & Fintech
		"Scapia": {taxonomy.IndustryFinance, "Credit Cards"},
		"Paytm":  {taxonomy.IndustryFinance, "Payments"},

		// Baby & Kids
		"Monica + Andy": {taxonomy.IndustryBabyKids, "Clothing"},
		"FirstCry":      {taxonomy.IndustryBabyKids, taxonomy.SubcategoryOthers},

		// General / Department Store
		"Anthropologie": {taxonomy.IndustryGeneral, "Multi-Category Retail"},
		"AJIO":          {taxonomy.IndustryGeneral, "Online Marketplaces"},
		"Reliance":      {taxonomy.IndustryGeneral, "Multi-Category Retail"},
		"Shopsimon":     {taxonomy.IndustryGeneral, "Flash Sale Retailers"},
		"Amazon":        {taxonomy.IndustryGeneral, "Online Marketplaces"},
		"Flipkart":      {taxonomy.IndustryGeneral, "Online Marketplaces"},
		"Meesho":        {taxonomy.IndustryGeneral, "Online Marketplaces"},
		"Tata CLiQ":     {taxonomy.IndustryGeneral, "Online Marketplaces"},
		"Snapdeal":      {taxonomy.IndustryGeneral, "Online Marketplaces"},

		// Business & B2B Retail
		"Zendesk": {taxonomy.IndustryBusinessB2B, taxonomy.SubcategoryOthers},
	})
}
