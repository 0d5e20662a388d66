package dto

// AssignCollaboratorRequest atribui um colaborador a um item de produção.
type AssignCollaboratorRequest struct {
	CollaboratorID string `json:"collaborator_id"`
}
