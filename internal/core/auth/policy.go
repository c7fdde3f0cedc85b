package auth

// 动作常量：鉴权通过后由 handler 侧做能力检查
const (
	ActionManageUsers = "users:manage"
	ActionListStaff   = "staff:list"
	ActionAddCourse   = "courses:add"
	ActionListCourses = "courses:list"
)

// CanAccess 能力检查：认证（中间件）与授权（这里）分开两段
func CanAccess(c *Claims, action string) bool {
	if c == nil {
		return false
	}
	switch action {
	case ActionManageUsers:
		return c.Role == "admin"
	case ActionListStaff, ActionAddCourse, ActionListCourses:
		return c.Role == "admin" || c.Role == "staff"
	}
	return false
}
