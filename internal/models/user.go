package models

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int   `json:"age"`
}

func (u User) RecordID() int {
	return u.ID
}

type UserPayload struct {
	ID    *int    `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *int    `json:"age"`
}

func (p UserPayload) ToUser() (User, error) {
	if p.ID == nil {
		return User{}, missingField("id")
	}
	if p.Name == nil {
		return User{}, missingField("name")
	}
	if p.Email == nil {
		return User{}, missingField("email")
	}
	return User{
		ID:    *p.ID,
		Name:  *p.Name,
		Email: *p.Email,
		Age:   p.Age,
	}, nil
}

// UserSummary is what GET /users/{id} returns without ?details=true.
type UserSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name}
}

type UserEnvelope struct {
	User interface{} `json:"user"`
}

type UserMutationResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
