package response

import "github.com/mdourado/box-geotag-service/internal/domain/entity"

type FileResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
}

func FileToResponse(f *entity.StoredFile) FileResponse {
	return FileResponse{
		ID:       f.ID,
		Filename: f.Name,
	}
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type TokenResponse struct {
	Status      string `json:"status"`
	AccessToken string `json:"access_token"`
}
