package types

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

type CourseResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	UserID    uint   `json:"user_id"`
}

type AssignmentResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    *int   `json:"priority"`
	CourseID    uint   `json:"course_id"`
	UserID      uint   `json:"user_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
