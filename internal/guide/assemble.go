package guide

// Block is one pre-authored advice block shown for a categorized keyword.
type Block struct {
	Keyword string   `json:"keyword,omitempty"`
	Context string   `json:"context,omitempty"`
	Title   string   `json:"title"`
	Advice  []string `json:"advice,omitempty"`
}

// EmptyPrompt is returned when no keyword was entered.
const EmptyPrompt = "気になる行動や様子をキーワードで入力してください。"

var blocks = map[Tag]Block{
	TagDanger: {
		Title: "安全確保を最優先に",
		Advice: []string{
			"本人より先に周囲の危険（道路・段差・火気）を確認する",
			"手をつなぐ・腕を組むなど物理的な安全確保を検討する",
			"外出先では出入口や駐車場の位置をあらかじめ把握しておく",
			"ひとりにしない時間帯・場面を家族で共有する",
		},
	},
	TagBoundary: {
		Title: "距離感のルールを一緒に作る",
		Advice: []string{
			"「腕一本ぶんあける」など具体的で測れるルールにする",
			"できたときにその場で短くほめる",
			"相手の表情カードや絵で適切な距離を繰り返し確認する",
		},
	},
	TagSensory: {
		Title: "刺激を減らす環境調整から",
		Advice: []string{
			"イヤーマフ・サングラスなど軽減グッズを試す",
			"混雑する時間帯を避けた予定にする",
			"逃げ込める静かな場所を先に決めておく",
			"無理に慣れさせようとしない",
		},
	},
	TagCommunication: {
		Title: "伝え方を視覚的・具体的に",
		Advice: []string{
			"一度にひとつ、短い言葉で伝える",
			"絵カード・写真・実物を添えて示す",
			"本人の返答を待つ時間を長めにとる",
			"否定形より「〜しよう」の形で伝える",
		},
	},
	TagMedical: {
		Title: "医療とつながる準備を",
		Advice: []string{
			"服薬時間・量をメモやアラームで管理する",
			"発作や症状の記録（日時・長さ・様子）を残す",
			"かかりつけ医の連絡先を同行者全員が持つ",
			"判断に迷うときは受診をためらわない",
		},
	},
	TagEmotional: {
		Title: "気持ちが落ち着く手順を決める",
		Advice: []string{
			"クールダウンできる場所・物（毛布・音楽）を用意する",
			"パニックの前兆（声・動き）を記録して早めに対応する",
			"落ち着いてから短い言葉で振り返る",
			"叱責より環境の調整を優先する",
		},
	},
	TagGeneral: {
		Title: "まずは記録から",
		Advice: []string{
			"いつ・どこで・何のあとに起きたかをメモする",
			"本人の好きなこと・安心できるものを一覧にしておく",
			"支援者・家族で同じ対応になるよう共有する",
		},
	},
}

// Assemble builds the display block for a categorized keyword. TagEmpty
// yields the fixed input prompt; every other tag echoes the keyword and
// context label with that tag's static title and advice.
func Assemble(tag Tag, rawKeyword, contextLabel string) Block {
	if tag == TagEmpty {
		return Block{Title: EmptyPrompt}
	}
	b := blocks[TagGeneral]
	if known, ok := blocks[tag]; ok {
		b = known
	}
	b.Keyword = rawKeyword
	b.Context = contextLabel
	return b
}
