package usecase

import "strings"

// SeriesKind はすべてのインジケーターの描画ヒントです。現状は折れ線のみ。
const SeriesKind = "line"

// indicatorCatalog は公開するインジケーター列の固定カタログです。
// レスポンスの並び順はソースの物理的な列順ではなく、このリストの順になります。
// ソースに存在しない列は黙ってスキップされます。
var indicatorCatalog = []string{
	"vwap",
	"vwapn",
	"vwapd",
	"ema_9",
	"ema_14",
	"ema_21",
	"rsi_14_ema",
	"rsi_14_wilder",
	"atr_14",
}

// indicatorName は列名から表示用ラベルを導出します（アンダースコア→空白、大文字化）。
func indicatorName(id string) string {
	return strings.ToUpper(strings.ReplaceAll(id, "_", " "))
}

// paneFor は列名のプレフィックスから描画先ペインを分類します。
// rsi* と atr* は独立ペイン、それ以外は価格チャートへのオーバーレイです。
func paneFor(id string) string {
	switch {
	case strings.HasPrefix(id, "rsi"):
		return "rsi"
	case strings.HasPrefix(id, "atr"):
		return "atr"
	default:
		return "price"
	}
}
