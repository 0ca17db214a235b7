package view

type ToastKind string

const (
	ToastInfo    ToastKind = "info"
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is the notification payload returned with every mutating response.
// The client dismisses it after TimeoutMS.
type Toast struct {
	Kind      ToastKind `json:"kind"`
	Message   string    `json:"message"`
	TimeoutMS int       `json:"timeout_ms"`
}

func SuccessToast(message string) Toast {
	return Toast{Kind: ToastSuccess, Message: message, TimeoutMS: 3000}
}

func InfoToast(message string) Toast {
	return Toast{Kind: ToastInfo, Message: message, TimeoutMS: 3000}
}
