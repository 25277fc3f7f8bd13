package entity

// Status de lead. O valor gravado no banco é o ID; o Text é só apresentação
// e pode ser trocado sem migração.
const (
	StatusNovo        = "novo"
	StatusContatado   = "contatado"
	StatusQualificado = "qualificado"
	StatusProposta    = "proposta"
	StatusFechado     = "fechado"
	StatusPerdido     = "perdido"
)

type LeadStatus struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// LeadStatuses é o vocabulário fechado, na ordem do funil.
var LeadStatuses = []LeadStatus{
	{StatusNovo, "Novo"},
	{StatusContatado, "Contatado"},
	{StatusQualificado, "Qualificado"},
	{StatusProposta, "Proposta"},
	{StatusFechado, "Fechado"},
	{StatusPerdido, "Perdido"},
}

func ValidStatus(id string) bool {
	for _, s := range LeadStatuses {
		if s.ID == id {
			return true
		}
	}
	return false
}

// StatusText devolve o texto de exibição. Lead antigo pode carregar um
// status fora do vocabulário; nesse caso mostramos o ID cru.
func StatusText(id string) string {
	for _, s := range LeadStatuses {
		if s.ID == id {
			return s.Text
		}
	}
	return id
}
