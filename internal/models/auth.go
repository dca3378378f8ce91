package models

type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (r LoginRequest) Credentials() (string, string, error) {
	if r.Username == nil {
		return "", "", missingField("username")
	}
	if r.Password == nil {
		return "", "", missingField("password")
	}
	return *r.Username, *r.Password, nil
}

type LoginSuccessResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

type LoginErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
