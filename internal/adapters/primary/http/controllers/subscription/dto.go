package subscription

// UpgradeRequest запрос на смену плана подписки
type UpgradeRequest struct {
	Plan string `json:"plan"`
}
