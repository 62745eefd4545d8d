// Package main provides localization for the img2gif CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":    "出力",
		"Animation": "アニメーション",
		"Color":     "色",
		"Debug":     "デバッグ",
		"Logging":   "ログ",

		// Root command
		"Create animated GIFs from a folder of images": "フォルダ内の画像からアニメーションGIFを作成",

		// Create command
		"Convert a folder of images into an animated GIF": "フォルダ内の画像をアニメーションGIFに変換",

		// Inspect command
		"Show frames, delays and loop count of a GIF": "GIFのフレーム、遅延、ループ回数を表示",
		"Usage: img2gif inspect <file.gif>":           "使い方: img2gif inspect <file.gif>",

		// Version command
		"Show version information": "バージョン情報を表示",
		"img2gif version %s":       "img2gif バージョン %s",

		// Output flags
		"Output GIF file path":                  "出力GIFファイルパス",
		"YAML configuration file":               "YAML設定ファイル",
		"Write a Markdown summary to this path": "Markdown形式のサマリーをこのパスに出力",

		// Animation flags
		"Frames per second":                                                       "1秒あたりのフレーム数",
		"Resize width (requires --height)":                                        "リサイズ後の幅（--height と併用）",
		"Resize height (requires --width)":                                        "リサイズ後の高さ（--width と併用）",
		"Resampling filter (lanczos, catmullrom, mitchell, linear, box, nearest)": "リサンプリングフィルタ（lanczos, catmullrom, mitchell, linear, box, nearest）",

		// Color flags
		"Flatten transparent pixels onto this color (hex, e.g. #ffffff)": "透明ピクセルをこの色に合成（16進数、例: #ffffff）",
		"GIF palette (adaptive, plan9, websafe)":                         "GIFパレット（adaptive, plan9, websafe）",
		"Disable Floyd-Steinberg dithering":                              "Floyd-Steinbergディザリングを無効化",

		// Debug flags
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Summary saved to %s": "サマリーを %s に保存しました",

		// Inspect output
		"File: %s (%s)":     "ファイル: %s (%s)",
		"Canvas: %dx%d":     "キャンバス: %dx%d",
		"Frames: %d":        "フレーム数: %d",
		"Loop: %s":          "ループ: %s",
		"Duration: %d ms":   "再生時間: %d ms",
		"  #%d %dx%d %d ms": "  #%d %dx%d %d ms",
		"once":              "1回のみ",
		"%d repeats":        "%d 回",

		// Summary content
		"Conversion Summary": "変換サマリー",
		"Generated":          "生成日時",
		"Source":             "入力",
		"Settings":           "設定",
		"Item":               "項目",
		"Value":              "値",
		"Directory":          "ディレクトリ",
		"Images":             "画像数",
		"Frame rate":         "フレームレート",
		"Frame delay":        "フレーム間隔",
		"Resize":             "リサイズ",
		"Palette":            "パレット",
		"Dithering":          "ディザリング",
		"Background":         "背景色",
		"File":               "ファイル",
		"Frames":             "フレーム数",
		"Canvas":             "キャンバス",
		"Duration":           "再生時間",
		"Loop":               "ループ",
		"Size":               "サイズ",
		"none":               "なし",
		"infinite":           "無限",
		"on":                 "有効",
		"off":                "無効",
	})
}
