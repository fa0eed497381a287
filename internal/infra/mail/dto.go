package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type BoasVindasData struct {
	Nome string
}

type NovoLeadData struct {
	CorretorNome string
	ClienteNome  string
	ImovelTitulo string
}
