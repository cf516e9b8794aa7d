package guide

import "github.com/sakamichi-tools/penlight/internal/pipeline"

// Severity tags one assessment item.
type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeveritySupport Severity = "support"
	SeverityMedical Severity = "medical"
)

// Tier is one advisory outcome of the assessment scorer.
type Tier string

const (
	TierMandatory   Tier = "mandatory"
	TierRecommended Tier = "recommended"
	TierNotRequired Tier = "not_required"
)

// TierText holds the fixed advisory block per tier.
var TierText = map[Tier]Block{
	TierMandatory: {
		Title: "付き添いが必須の可能性が高い",
		Advice: []string{
			"単独での外出・留守番は避けてください",
			"医療的な項目がある場合は主治医に相談のうえ計画を立ててください",
			"同行者は緊急連絡先と服薬情報を携帯してください",
		},
	},
	TierRecommended: {
		Title: "付き添いを推奨",
		Advice: []string{
			"慣れた場所でも可能な範囲で同行してください",
			"単独にする場合は時間と場所を限定し、連絡手段を確保してください",
		},
	},
	TierNotRequired: {
		Title: "付き添いは不要と考えられる",
		Advice: []string{
			"現時点で強い見守りの必要は見られません",
			"状況が変わったら再度チェックしてください",
		},
	},
}

type severityCounts struct {
	danger  int
	support int
	medical int
}

// Threshold rules in priority order; the first matching rule decides the
// tier. Kept as an explicit list so the precedence itself is testable.
var tierRules = []pipeline.Rule[severityCounts, Tier]{
	{When: func(c severityCounts) bool { return c.medical > 0 || c.danger >= 2 }, Then: TierMandatory},
	{When: func(c severityCounts) bool { return c.danger == 1 || c.support >= 2 }, Then: TierRecommended},
}

// Score counts the checked severities and maps them through the fixed
// thresholds. An empty selection scores TierNotRequired: the thresholds do
// not distinguish "nothing checked" from "nothing concerning checked", so
// callers that care must check len(selected) themselves.
func Score(selected []Severity) Tier {
	var c severityCounts
	for _, s := range selected {
		switch s {
		case SeverityDanger:
			c.danger++
		case SeveritySupport:
			c.support++
		case SeverityMedical:
			c.medical++
		}
	}
	return pipeline.FirstMatch(tierRules, c, TierNotRequired)
}

// AssessmentItem is one row of the accompaniment checklist.
type AssessmentItem struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// AssessmentItems is the fixed accompaniment-assessment checklist.
var AssessmentItems = []AssessmentItem{
	{Text: "道路への飛び出しがある", Severity: SeverityDanger},
	{Text: "自傷・他害の行動がある", Severity: SeverityDanger},
	{Text: "迷子・徘徊の心配がある", Severity: SeverityDanger},
	{Text: "初めての場所で強い不安が出る", Severity: SeveritySupport},
	{Text: "言葉でのやり取りに支援が必要", Severity: SeveritySupport},
	{Text: "長い待ち時間が苦手", Severity: SeveritySupport},
	{Text: "音や光などの感覚過敏がある", Severity: SeveritySupport},
	{Text: "発作の既往がある", Severity: SeverityMedical},
	{Text: "定時の服薬・医療的ケアが必要", Severity: SeverityMedical},
}
