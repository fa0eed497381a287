package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

var boasVindasTmpl = template.Must(template.New("boas-vindas").Parse(`
<p>Olá, {{.Nome}}!</p>
<p>Seu acesso de corretor ao Imóvel Hub está liberado. Entre com seu email
e a senha cadastrada para publicar seus primeiros imóveis.</p>
<p>Bons negócios!</p>
`))

var novoLeadTmpl = template.Must(template.New("novo-lead").Parse(`
<p>Olá, {{.CorretorNome}}!</p>
<p><strong>{{.ClienteNome}}</strong> acabou de favoritar o imóvel
<strong>{{.ImovelTitulo}}</strong>.</p>
<p>Acesse o painel de leads para ver os contatos e iniciar a conversa.</p>
`))

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     "nao-responda@imovelhub.com.br",
	}
}

func (s *EmailSender) SendBoasVindasCorretor(to, nome string) error {
	var body bytes.Buffer
	if err := boasVindasTmpl.Execute(&body, BoasVindasData{Nome: nome}); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	subject := fmt.Sprintf("Bem-vindo ao Imóvel Hub, %s! Seu acesso chegou 🚀", nome)
	return s.send(to, subject, body.String())
}

func (s *EmailSender) SendNovoLead(to, corretorNome, clienteNome, imovelTitulo string) error {
	var body bytes.Buffer
	data := NovoLeadData{
		CorretorNome: corretorNome,
		ClienteNome:  clienteNome,
		ImovelTitulo: imovelTitulo,
	}
	if err := novoLeadTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	subject := fmt.Sprintf("🔥 Novo lead: %s favoritou %s", clienteNome, imovelTitulo)
	return s.send(to, subject, body.String())
}

func (s *EmailSender) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}
