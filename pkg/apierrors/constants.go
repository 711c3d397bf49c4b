package apierrors

const (
	MsgUnauthenticated      = "unauthenticated"
	MsgUnauthorized         = "unauthorized"
	MsgMissingFields        = "missingFields"
	MsgInvalidPayload       = "invalidPayload"
	MsgInvalidCredentials   = "invalidCredentials"
	MsgEmailTaken           = "emailTaken"
	MsgTaskNotFound         = "taskNotFound"
	MsgUserNotFound         = "userNotFound"
	MsgNotificationNotFound = "notificationNotFound"
	MsgSelfDeletion         = "selfDeletion"
	MsgUserHasRecords       = "userHasRecords"
	MsgFailRegister         = "failRegister"
	MsgFailLogin            = "failLogin"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailCompleteTask     = "failCompleteTask"
	MsgFailApproveTask      = "failApproveTask"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgFailExtendTask       = "failExtendTask"
	MsgFailToggleTask       = "failToggleTask"
	MsgFailListTasks        = "failListTasks"
	MsgFailGetTask          = "failGetTask"
	MsgFailListNotifs       = "failListNotifications"
	MsgFailMarkRead         = "failMarkRead"
	MsgFailSubscribe        = "failSubscribe"
	MsgFailUnsubscribe      = "failUnsubscribe"
	MsgFailListUsers        = "failListUsers"
	MsgFailDeleteUser       = "failDeleteUser"
	MsgFailReset            = "failReset"
)
