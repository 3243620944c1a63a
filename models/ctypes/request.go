package ctypes

// RequestStatus 订阅申请状态
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"  // 待处理
	RequestApproved RequestStatus = "approved" // 已批准
	RequestRejected RequestStatus = "rejected" // 已驳回
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}
