package usecase

// LeadInput é a entrada crua do formulário de lead (criação e edição).
type LeadInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

type SendMessageInput struct {
	LeadID  string `json:"lead_id"`
	Message string `json:"message"`
}

type BulkMessageInput struct {
	Message string   `json:"message"`
	LeadIDs []string `json:"selected_leads"`
}

type UpdateProfileInput struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// ActionOutput é o envelope uniforme das operações de escrita.
type ActionOutput struct {
	Success string `json:"success"`
}

// LeadStats é derivado na leitura, nunca persistido.
type LeadStats struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"byStatus"`
	RecentLeads int            `json:"recentLeads"`
	ThisMonth   int            `json:"thisMonth"`
}
