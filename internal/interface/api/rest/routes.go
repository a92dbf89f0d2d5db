package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	RouteAccounts            = RouteApiV1 + "/accounts"
	RouteAccountsDeactivated = RouteAccounts + "/deactivated"
	RouteAccount             = RouteAccounts + "/:account_id"
	RouteAccountReactivate   = RouteAccount + "/reactivate"
	RouteAccountPassword     = RouteAccount + "/password"
	RouteAccountType         = RouteAccount + "/type"

	RouteChangelog = RouteApiV1 + "/changelog"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
