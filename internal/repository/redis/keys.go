package redis

const ns = "vpadmin:v1"

func KeyFlag(key string) string {
	return ns + ":flag:" + key
}

func KeyDashboardSummary() string {
	return ns + ":dashboard:summary"
}

func ChannelAdminActions() string {
	return ns + ":admin:actions"
}
