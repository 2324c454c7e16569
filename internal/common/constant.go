package common

// Cache keys for the persisted session state. The bootstrap reads them
// independently; login writes both on success.
const (
	UserInfoCacheKey    = "userInfo"
	AccessTokenCacheKey = "accessToken"
)
