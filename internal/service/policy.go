package service

// Decision 资源访问裁决结果
type Decision int

const (
	Allowed Decision = iota
	DecisionForbidden
	DecisionNotFound
)

// Owned 归属于某个用户的资源
type Owned interface {
	OwnerID() uint64
}

// CheckOwner 裁决当前用户对资源的写权限。资源不存在时返回 DecisionNotFound
func CheckOwner(resource Owned, userID uint64) Decision {
	// 类型化 nil 指针的 OwnerID 返回 0，而合法资源的作者 ID 不会为 0
	if resource == nil || resource.OwnerID() == 0 {
		return DecisionNotFound
	}
	if resource.OwnerID() != userID {
		return DecisionForbidden
	}
	return Allowed
}
