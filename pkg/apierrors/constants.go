package apierrors

const (
	MsgAuthRequired        = "authenticationRequired"
	MsgInvalidToken        = "invalidAuthToken"
	MsgAdminRequired       = "adminAccessRequired"
	MsgInvalidPayload      = "invalidPayload"
	MsgProjectNotFound     = "projectNotFound"
	MsgTaskNotFound        = "taskNotFound"
	MsgProgressNotFound    = "taskProgressNotFound"
	MsgTaskNotInProgress   = "taskNotInProgress"
	MsgApplicationNotFound = "applicationNotFound"
	MsgFailListProjects    = "failListProjects"
	MsgFailFetchProject    = "failFetchProject"
	MsgFailSubmitTask      = "failSubmitTask"
	MsgFailFetchProgress   = "failFetchProgress"
	MsgFailUpdateProgress  = "failUpdateProgress"
	MsgFailFetchTasks      = "failFetchTasks"
	MsgFailSubmitApp       = "failSubmitApplication"
	MsgFailFetchApps       = "failFetchApplications"
	MsgFailUpdateApp       = "failUpdateApplication"
)
