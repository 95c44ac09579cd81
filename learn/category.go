package learn

import (
	"strings"

	"github.com/laborlink/matchcore/core"
)

// categoryBucket maps service-name fragments to a topical category.
type categoryBucket struct {
	Terms    []string
	Category core.Category
}

// Buckets are keyed on the service NAME, not on the situation text, so
// learned categories never feed back into the similarity scores that
// produced them.
var categoryBuckets = []categoryBucket{
	{Terms: []string{"체불", "임금", "대지급금", "급여"}, Category: core.CategoryWageArrears},
	{Terms: []string{"해고"}, Category: core.CategoryDismissal},
	{Terms: []string{"괴롭힘"}, Category: core.CategoryHarassment},
	{Terms: []string{"산재"}, Category: core.CategoryIndustrialAccident},
	{Terms: []string{"계약", "취업규칙"}, Category: core.CategoryContract},
}

// categoryForService assigns a category from the target service's name.
func categoryForService(service string) core.Category {
	for _, bucket := range categoryBuckets {
		for _, term := range bucket.Terms {
			if strings.Contains(service, term) {
				return bucket.Category
			}
		}
	}
	return core.CategoryOther
}
