package services

import (
	"fmt"
	"strings"

	"github.com/wellspring-labs/wellspring/internal/catalog"
	"github.com/wellspring-labs/wellspring/internal/models"
)

const (
	explanationTemplate = "根據您提供的健康信息，我們為您推薦了%d種保健品。這些保健品針對您的%s等症狀，以及%s等身體系統需求進行了優化選擇。堅持使用這些保健品，配合均衡飲食和適當運動，有助於改善您的整體健康狀況。建議您在一個季度（約3個月）後進行健康重新評估，以調整保健方案。"

	genericSymptomsPhrase = "一般健康維護"
	genericSystemsPhrase  = "整體身體系統"

	listSeparator = "、"
)

// Lists shorter than this are topped up from the catalog fallback, until the
// target is reached or the fallback runs out.
const targetSupplements = 3

// Recommend derives an ordered, deduplicated supplement list from a health
// profile. Pure function of its inputs: absent catalog keys are skipped, and
// there is no failure path.
func Recommend(profile models.HealthProfile, cat *catalog.Catalog) models.Recommendation {
	supplements := make([]string, 0, 8)
	seen := make(map[string]struct{}, 8)
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		supplements = append(supplements, name)
	}

	for _, symptom := range profile.Symptoms {
		for _, name := range cat.Symptoms[symptom] {
			add(name)
		}
	}

	for _, system := range profile.BodySystemIssues {
		for _, name := range cat.BodySystems[system] {
			add(name)
		}
	}

	for _, condition := range profile.SpecificConditions {
		entry, ok := cat.Conditions[condition]
		if !ok {
			continue
		}
		if entry.Nested() {
			for _, group := range entry.Groups {
				for _, name := range group.Supplements {
					add(name)
				}
			}
			continue
		}
		for _, name := range entry.Supplements {
			add(name)
		}
	}

	if len(supplements) < targetSupplements {
		for _, name := range cat.Fallback {
			add(name)
			if len(supplements) >= targetSupplements {
				break
			}
		}
	}

	dosage := make(map[string]string, len(supplements))
	usage := make(map[string]string, len(supplements))
	for _, name := range supplements {
		pair := cat.DosageFor(name)
		dosage[name] = pair.Dosage
		usage[name] = pair.Usage
	}

	return models.Recommendation{
		Supplements: supplements,
		Dosage:      dosage,
		Usage:       usage,
		Explanation: buildExplanation(len(supplements), profile.Symptoms, profile.BodySystemIssues),
	}
}

func buildExplanation(count int, symptoms []string, systems []string) string {
	symptomsText := genericSymptomsPhrase
	if len(symptoms) > 0 {
		symptomsText = strings.Join(symptoms, listSeparator)
	}
	systemsText := genericSystemsPhrase
	if len(systems) > 0 {
		systemsText = strings.Join(systems, listSeparator)
	}
	return fmt.Sprintf(explanationTemplate, count, symptomsText, systemsText)
}
