package taxonomy

import "testing"

func TestIndustriesClosed(t *testing.T) {
	inds := Industries()
	if len(inds) != 17 {
		t.Fatalf("Industries() returned %d entries, want 17", len(inds))
	}
	seen := make(map[Industry]bool)
	for _, ind := range inds {
		if seen[ind] {
			t.Errorf("duplicate industry %q", ind)
		}
		seen[ind] = true
		if !ValidIndustry(string(ind)) {
			t.Errorf("industry %q not valid by its own check", ind)
		}
	}
}

func TestValidIndustry(t *testing.T) {
	if !ValidIndustry("Beauty & Personal Care") {
		t.Error("Beauty & Personal Care should be valid")
	}
	if ValidIndustry("Cosmetics") {
		t.Error("Cosmetics is not a canonical industry name")
	}
	if ValidIndustry("") {
		t.Error("empty string should not be valid")
	}
}

func TestEveryIndustryHasOthers(t *testing.T) {
	for _, ind := range Industries() {
		subs := Subcategories(ind)
		if len(subs) == 0 {
			t.Errorf("industry %q has no subcategories", ind)
			continue
		}
		found := false
		for _, s := range subs {
			if s == SubcategoryOthers {
				found = true
			}
		}
		if !found {
			t.Errorf("industry %q missing the %q subcategory", ind, SubcategoryOthers)
		}
	}
}

func TestCoerceSubcategory(t *testing.T) {
	if got := CoerceSubcategory(IndustryBeauty, "Skincare"); got != "Skincare" {
		t.Errorf("valid subcategory changed: %q", got)
	}
	if got := CoerceSubcategory(IndustryBeauty, "Rocket Fuel"); got != SubcategoryOthers {
		t.Errorf("invalid subcategory = %q, want %q", got, SubcategoryOthers)
	}
	if got := CoerceSubcategory(IndustryBeauty, ""); got != SubcategoryOthers {
		t.Errorf("empty subcategory = %q, want %q", got, SubcategoryOthers)
	}
	// A subcategory valid for one industry is not valid for another.
	if got := CoerceSubcategory(IndustryPets, "Skincare"); got != SubcategoryOthers {
		t.Errorf("cross-industry subcategory = %q, want %q", got, SubcategoryOthers)
	}
}

func TestCampaignTypesClosed(t *testing.T) {
	cts := CampaignTypes()
	if len(cts) != 15 {
		t.Fatalf("CampaignTypes() returned %d entries, want 15", len(cts))
	}
	for _, ct := range cts {
		if !ValidCampaignType(string(ct)) {
			t.Errorf("campaign type %q not valid by its own check", ct)
		}
	}
	if ValidCampaignType("Spam") {
		t.Error("Spam should not be a valid campaign type")
	}
}

func TestLegacyRenamesTargetCurrentNames(t *testing.T) {
	for oldName, newName := range LegacyIndustryRenames {
		if ValidIndustry(oldName) {
			t.Errorf("legacy name %q is still a current industry", oldName)
		}
		if !ValidIndustry(string(newName)) {
			t.Errorf("rename target %q is not a current industry", newName)
		}
	}
}
