// Package guide implements the careguide reference logic: keyword
// categorization, guidance assembly, condition lookup, and the
// accompaniment-assessment scorer.
package guide

import (
	"strings"

	"github.com/sakamichi-tools/penlight/internal/jptext"
	"github.com/sakamichi-tools/penlight/internal/pipeline"
)

// Tag classifies a free-text keyword into one guidance category.
type Tag string

const (
	TagEmpty         Tag = "empty"
	TagDanger        Tag = "danger"
	TagBoundary      Tag = "boundary"
	TagSensory       Tag = "sensory"
	TagCommunication Tag = "communication"
	TagMedical       Tag = "medical"
	TagEmotional     Tag = "emotional"
	TagGeneral       Tag = "general"
)

// keywordSets lists the substring sets per tag in precedence order. A
// keyword matching several sets takes the tag of the earliest set.
var keywordSets = []struct {
	Tag   Tag
	Words []string
}{
	{TagDanger, []string{"飛び出", "道路", "自傷", "他害", "暴れ", "危険", "刃物", "高所", "徘徊", "迷子"}},
	{TagBoundary, []string{"距離", "触って", "触る", "抱きつ", "近すぎ", "スキンシップ", "人のもの"}},
	{TagSensory, []string{"音", "光", "まぶし", "うるさ", "感覚", "偏食", "イヤーマフ", "におい"}},
	{TagCommunication, []string{"言葉", "会話", "伝わ", "伝え", "指示", "理解", "エコラリア", "おうむ返し"}},
	{TagMedical, []string{"薬", "発作", "てんかん", "アレルギー", "けいれん", "病院", "通院", "発熱"}},
	{TagEmotional, []string{"不安", "パニック", "泣", "怒り", "かんしゃく", "癇癪", "落ち着か"}},
}

var categoryRules = buildCategoryRules()

func buildCategoryRules() []pipeline.Rule[string, Tag] {
	rules := make([]pipeline.Rule[string, Tag], 0, len(keywordSets))
	for _, set := range keywordSets {
		words := set.Words
		rules = append(rules, pipeline.Rule[string, Tag]{
			When: func(kw string) bool {
				for _, w := range words {
					if strings.Contains(kw, w) {
						return true
					}
				}
				return false
			},
			Then: set.Tag,
		})
	}
	return rules
}

// Categorize maps a free-text keyword to exactly one tag. The empty (or
// whitespace-only) keyword maps to TagEmpty; anything matching no set maps
// to TagGeneral.
func Categorize(keyword string) Tag {
	kw := jptext.Normalize(keyword)
	if kw == "" {
		return TagEmpty
	}
	return pipeline.FirstMatch(categoryRules, kw, TagGeneral)
}
