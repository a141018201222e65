package apierrors

const (
	MsgProjectNotFound      = "projectNotFound"
	MsgTaskNotFound         = "taskNotFound"
	MsgNotificationNotFound = "notificationNotFound"
	MsgPageNotFound         = "pageNotFound"

	MsgFailLoadDashboard  = "failLoadDashboard"
	MsgFailListProjects   = "failListProjects"
	MsgFailSaveProject    = "failSaveProject"
	MsgFailDeleteProject  = "failDeleteProject"
	MsgFailListTasks      = "failListTasks"
	MsgFailSaveTask       = "failSaveTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailUpdatePriority = "failUpdateTaskPriority"
	MsgFailMarkNotifRead  = "failMarkNotificationRead"
)
