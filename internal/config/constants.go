// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "HanVietLearn"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort = ":8080"
	DefaultLogLevel   = "info"

	// テスト作成のデフォルト（元データの比率は合計1である必要はない）
	DefaultTestCount     = 50
	DefaultVocabRatio    = 0.4
	DefaultSentenceRatio = 0.3
	DefaultReadingRatio  = 0.3

	// 文の自動生成の上限
	DefaultGeneratedSentenceLimit = 10000
	DefaultUnitScanLimit          = 1000

	DefaultSessionHistoryLimit = 50
	DefaultJWTExpiresHours     = 72
)
