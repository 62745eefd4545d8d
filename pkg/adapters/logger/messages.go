package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Converting images in %s":                  "%s の画像を変換中",
		"Found %d images":                          "%d 枚の画像が見つかりました",
		"No images found in the specified folder.": "指定されたフォルダに画像が見つかりません。",
		"Loaded %d frames":                         "%d フレームを読み込みました",
		"Encoded %d frames (%s)":                   "%d フレームをエンコードしました (%s)",
		"GIF created and saved at %s":              "GIF を作成し %s に保存しました",
		"Interrupted, shutting down...":            "中断されました。シャットダウン中...",

		// Collect stage
		"Scanning %s":                "%s を走査中",
		"Accepted %s":                "%s を対象に追加",
		"Skipped %s":                 "%s をスキップ",
		"Collected %d of %d entries": "%d / %d 件のエントリを収集しました",

		// Load stage
		"Decoding %s":                         "%s をデコード中",
		"Decoded %s: %dx%d":                   "%s をデコードしました: %dx%d",
		"Resizing frame %d to %dx%d (%s)":     "フレーム %d を %dx%d にリサイズ中 (%s)",
		"Flattening frame %d onto background": "フレーム %d を背景色に合成中",

		"Width and height must both be set to resize; keeping source dimensions": "リサイズには幅と高さの両方が必要です。元のサイズを維持します",

		// Encode stage
		"Encoding %d frames at %d ms per frame": "%d フレームを 1 フレーム %d ms でエンコード中",
		"Canvas size %dx%d":                     "キャンバスサイズ %dx%d",
		"Animation encoded: %d bytes":           "アニメーションのエンコード完了: %d バイト",

		// Errors
		"Failed to collect images: %s":   "画像の収集に失敗しました: %s",
		"Failed to load frames: %s":      "フレームの読み込みに失敗しました: %s",
		"Failed to encode animation: %s": "アニメーションのエンコードに失敗しました: %s",
		"Failed to write output: %s":     "出力の書き込みに失敗しました: %s",
		"Failed to save debug frame: %s": "デバッグフレームの保存に失敗しました: %s",
		"Failed to save file list: %s":   "ファイル一覧の保存に失敗しました: %s",
	})
}
