package roster

// Member is one roster record: group key, generation label, display name,
// nickname, hiragana reading, and the two official penlight color names.
type Member struct {
	Group string `json:"group"`
	Gen   string `json:"gen"`
	Name  string `json:"name"`
	Aka   string `json:"aka,omitempty"`
	Kana  string `json:"kana"`
	C1    string `json:"c1"`
	C2    string `json:"c2"`
}

var nogi = []Member{
	{Group: "nogi", Gen: "3期", Name: "伊藤理々杏", Aka: "りりあ", Kana: "いとうりりあ", C1: "紫", C2: "赤"},
	{Group: "nogi", Gen: "3期", Name: "岩本蓮加", Aka: "れんたん", Kana: "いわもとれんか", C1: "赤", C2: "ピンク"},
	{Group: "nogi", Gen: "3期", Name: "梅澤美波", Aka: "みなみん", Kana: "うめざわみなみ", C1: "青", C2: "水色"},
	{Group: "nogi", Gen: "3期", Name: "吉田綾乃クリスティー", Aka: "あやてぃー", Kana: "よしだあやのくりすてぃー", C1: "ピンク", C2: "紫"},

	{Group: "nogi", Gen: "4期", Name: "遠藤さくら", Aka: "さくちゃん", Kana: "えんどうさくら", C1: "ピンク", C2: "白"},
	{Group: "nogi", Gen: "4期", Name: "賀喜遥香", Aka: "かっきー", Kana: "かきはるか", C1: "オレンジ", C2: "緑"},
	{Group: "nogi", Gen: "4期", Name: "金川紗耶", Aka: "やんちゃん", Kana: "かながわさや", C1: "水色", C2: "赤"},
	{Group: "nogi", Gen: "4期", Name: "黒見明香", Aka: "くろみん", Kana: "くろみはるか", C1: "紫", C2: "緑"},
	{Group: "nogi", Gen: "4期", Name: "佐藤璃果", Aka: "りかちゃん", Kana: "さとうりか", C1: "ピンク", C2: "ターコイズ"},
	{Group: "nogi", Gen: "4期", Name: "柴田柚菜", Aka: "ゆんちゃん", Kana: "しばたゆな", C1: "青", C2: "黄緑"},
	{Group: "nogi", Gen: "4期", Name: "田村真佑", Aka: "まゆたん", Kana: "たむらまゆ", C1: "紫", C2: "水色"},
	{Group: "nogi", Gen: "4期", Name: "筒井あやめ", Aka: "あやめん", Kana: "つついあやめ", C1: "紫", C2: "紫"},
	{Group: "nogi", Gen: "4期", Name: "林瑠奈", Aka: "はやし", Kana: "はやしるな", C1: "ピンク", C2: "ピンク"},
	{Group: "nogi", Gen: "4期", Name: "弓木奈於", Aka: "ゆみっきー", Kana: "ゆみきなお", C1: "赤", C2: "黄緑"},

	{Group: "nogi", Gen: "5期", Name: "五百城茉央", Aka: "まおちゃん", Kana: "いおきまお", C1: "ターコイズ", C2: "青"},
	{Group: "nogi", Gen: "5期", Name: "池田瑛紗", Aka: "てれぱん", Kana: "いけだてれさ", C1: "緑", C2: "白"},
	{Group: "nogi", Gen: "5期", Name: "一ノ瀬美空", Aka: "みーきゅん", Kana: "いちのせみく", C1: "水色", C2: "水色"},
	{Group: "nogi", Gen: "5期", Name: "井上和", Aka: "なぎちゃん", Kana: "いのうえなぎ", C1: "赤", C2: "白"},
	{Group: "nogi", Gen: "5期", Name: "岡本姫奈", Aka: "ひなちゃん", Kana: "おかもとひな", C1: "紫", C2: "青"},
	{Group: "nogi", Gen: "5期", Name: "小川彩", Aka: "あーや", Kana: "おがわあや", C1: "白", C2: "白"},
	{Group: "nogi", Gen: "5期", Name: "奥田いろは", Aka: "いろは", Kana: "おくだいろは", C1: "黄緑", C2: "ピンク"},
	{Group: "nogi", Gen: "5期", Name: "川﨑桜", Aka: "さくたん", Kana: "かわさきさくら", C1: "ピンク", C2: "緑"},
	{Group: "nogi", Gen: "5期", Name: "菅原咲月", Aka: "さつき", Kana: "すがわらさつき", C1: "ピンク", C2: "水色"},
	{Group: "nogi", Gen: "5期", Name: "冨里奈央", Aka: "なおちゃん", Kana: "とみさとなお", C1: "ターコイズ", C2: "ターコイズ"},
	{Group: "nogi", Gen: "5期", Name: "中西アルノ", Aka: "あるの", Kana: "なかにしあるの", C1: "水色", C2: "ターコイズ"},
}

var sakura = []Member{
	{Group: "sakura", Gen: "2期", Name: "井上梨名", Kana: "いのうえりな", C1: "ブルー", C2: "ブルー"},
	{Group: "sakura", Gen: "2期", Name: "遠藤光莉", Kana: "えんどうひかり", C1: "パープル", C2: "パープル"},
	{Group: "sakura", Gen: "2期", Name: "田村保乃", Kana: "たむらほの", C1: "パステルブルー", C2: "パステルブルー"},
	{Group: "sakura", Gen: "2期", Name: "森田ひかる", Kana: "もりたひかる", C1: "レッド", C2: "ブルー"},
	{Group: "sakura", Gen: "2期", Name: "守屋麗奈", Kana: "もりやれな", C1: "イエロー", C2: "ピンク"},
	{Group: "sakura", Gen: "2期", Name: "山﨑天", Aka: "てん", Kana: "やまさきてん", C1: "ホワイト", C2: "グリーン"},

	{Group: "sakura", Gen: "3期", Name: "石森璃花", Kana: "いしもりりか", C1: "グリーン", C2: "ピンク"},
	{Group: "sakura", Gen: "3期", Name: "谷口愛季", Kana: "たにぐちあいり", C1: "レッド", C2: "パープル"},
	{Group: "sakura", Gen: "3期", Name: "中嶋優月", Kana: "なかしまゆづき", C1: "ピンク", C2: "ピンク"},
}

var hinata = []Member{
	{Group: "hinata", Gen: "2期", Name: "金村美玖", Kana: "かねむらみく", C1: "パステルブルー", C2: "イエロー"},
	{Group: "hinata", Gen: "2期", Name: "河田陽菜", Kana: "かわたひな", C1: "イエロー", C2: "サクラピンク"},
	{Group: "hinata", Gen: "2期", Name: "小坂菜緒", Aka: "こさかな", Kana: "こさかなお", C1: "ホワイト", C2: "バイオレット"},
	{Group: "hinata", Gen: "2期", Name: "松田好花", Aka: "このか", Kana: "まつだこのか", C1: "パールグリーン", C2: "サクラピンク"},

	{Group: "hinata", Gen: "3期", Name: "上村ひなの", Kana: "かみむらひなの", C1: "エメラルドグリーン", C2: "レッド"},
	{Group: "hinata", Gen: "4期", Name: "正源司陽子", Kana: "しょうげんじようこ", C1: "オレンジ", C2: "レッド"},
}

// All returns the full member table in roster order. The slice is shared;
// callers must not mutate it.
func All() []Member {
	return allMembers
}

var allMembers = func() []Member {
	out := make([]Member, 0, len(nogi)+len(sakura)+len(hinata))
	out = append(out, nogi...)
	out = append(out, sakura...)
	out = append(out, hinata...)
	return out
}()
