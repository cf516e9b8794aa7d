package guide

import "sort"

// Condition is the pre-authored guidance for one condition key: basic
// measures, risks to watch, and special measures.
type Condition struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Basic   []string `json:"basic"`
	Risks   []string `json:"risks"`
	Special []string `json:"special"`
}

var conditions = map[string]Condition{
	"dementia": {
		Key:   "dementia",
		Label: "認知症",
		Basic: []string{
			"本人のペースに合わせ、急がせない",
			"否定せず、話を合わせてから切り替える",
			"名前と連絡先を身につけてもらう",
		},
		Risks: []string{
			"外出時の迷子・帰宅困難",
			"火の不始末・服薬忘れ",
			"金銭管理のトラブル",
		},
		Special: []string{
			"GPS端末や見守りサービスの利用を検討する",
			"地域包括支援センターに早めに相談する",
		},
	},
	"epilepsy": {
		Key:   "epilepsy",
		Label: "てんかん",
		Basic: []string{
			"服薬を欠かさない仕組み（アラーム・カレンダー）を作る",
			"睡眠不足・強い光など誘因を避ける",
		},
		Risks: []string{
			"入浴中・水辺での発作",
			"転倒によるけが",
		},
		Special: []string{
			"発作時は周囲の物をどけ、頭を保護して収まるのを待つ",
			"5分以上続く発作はためらわず救急要請する",
			"発作の様子を動画や記録で主治医に伝える",
		},
	},
	"autism": {
		Key:   "autism",
		Label: "自閉スペクトラム症",
		Basic: []string{
			"予定の変更は前もって視覚的に伝える",
			"あいまいな表現を避け、具体的に伝える",
		},
		Risks: []string{
			"感覚過敏によるパニック",
			"興味対象への急な飛び出し",
		},
		Special: []string{
			"本人専用の落ち着けるスペースを確保する",
			"ヘルプマークや支援カードの携帯を検討する",
		},
	},
	"diabetes": {
		Key:   "diabetes",
		Label: "糖尿病",
		Basic: []string{
			"食事時間と内容を記録する",
			"処方どおりの服薬・インスリン管理を支援する",
		},
		Risks: []string{
			"低血糖（冷汗・ふるえ・意識もうろう）",
			"足の傷の悪化",
		},
		Special: []string{
			"ブドウ糖や補食を常に携帯する",
			"意識障害があればすぐ救急要請する",
		},
	},
	"asthma": {
		Key:   "asthma",
		Label: "ぜんそく",
		Basic: []string{
			"発作時の吸入薬を常に携帯する",
			"ほこり・煙・冷気など誘因を避ける",
		},
		Risks: []string{
			"夜間・明け方の発作",
			"運動後の呼吸困難",
		},
		Special: []string{
			"吸入しても改善しない場合は受診する",
			"会話ができないほどの発作は救急要請する",
		},
	},
}

// ConditionGuide looks up guidance by condition key. An empty or unknown
// key returns ok=false: the "no selection" empty state, not an error.
func ConditionGuide(key string) (Condition, bool) {
	c, ok := conditions[key]
	return c, ok
}

// ConditionKeys lists the known condition keys, sorted.
func ConditionKeys() []string {
	keys := make([]string, 0, len(conditions))
	for k := range conditions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
