package request

type SaveProgressRequest struct {
	Correct bool `json:"correct"`
}
