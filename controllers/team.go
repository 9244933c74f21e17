// controllers/team.go
package controllers

import (
	"barbearia-backend/models"
	"barbearia-backend/storage"

	"gorm.io/gorm"
)

// CreateTeamMemberInput defines the expected JSON structure for creating a team member
type CreateTeamMemberInput struct {
	Name      string  `json:"name" binding:"required"`
	Bio       *string `json:"bio"`
	ImageURL  string  `json:"imageUrl" binding:"required"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Linkedin  *string `json:"linkedin"`
	Active    *bool   `json:"active"`
}

func (in CreateTeamMemberInput) Model() models.TeamMember {
	return models.TeamMember{
		Name:      in.Name,
		Bio:       in.Bio,
		ImageURL:  in.ImageURL,
		Instagram: in.Instagram,
		Facebook:  in.Facebook,
		Linkedin:  in.Linkedin,
		Active:    in.Active == nil || *in.Active,
	}
}

// UpdateTeamMemberInput defines the expected JSON structure for updating a team member
type UpdateTeamMemberInput struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	ImageURL  *string `json:"imageUrl"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Linkedin  *string `json:"linkedin"`
	Active    *bool   `json:"active"`
}

func (in UpdateTeamMemberInput) Apply(t *models.TeamMember) {
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Bio != nil {
		t.Bio = in.Bio
	}
	if in.ImageURL != nil {
		t.ImageURL = *in.ImageURL
	}
	if in.Instagram != nil {
		t.Instagram = in.Instagram
	}
	if in.Facebook != nil {
		t.Facebook = in.Facebook
	}
	if in.Linkedin != nil {
		t.Linkedin = in.Linkedin
	}
	if in.Active != nil {
		t.Active = *in.Active
	}
}

func NewTeamResource(db *gorm.DB, files storage.ObjectStore) *Resource[models.TeamMember, CreateTeamMemberInput, UpdateTeamMemberInput] {
	return &Resource[models.TeamMember, CreateTeamMemberInput, UpdateTeamMemberInput]{
		DB:   db,
		Name: "team member",
		Messages: Messages{
			MissingFields: "Todos os campos são obrigatórios.",
			CreateFailed:  "Erro ao criar um membro da equipe.",
			FetchFailed:   "Erro ao buscar um membro da equipe.",
			UpdateFailed:  "Erro ao editar um membro da equipe.",
			DeleteFailed:  "Erro ao excluir um membro da equipe.",
			NotFound:      "Membro da equipe não encontrado.",
		},
		Files:     files,
		ImageURL:  func(t models.TeamMember) *string { return &t.ImageURL },
		Serialize: func(t models.TeamMember) any { return t.Public() },
	}
}
