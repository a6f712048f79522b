package notify

import (
	"bytes"
	"html/template"
)

const baseStyle = `
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { padding: 30px; text-align: center; border-radius: 10px 10px 0 0; color: white; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .info-box { background: white; padding: 20px; border-left: 4px solid #6EC1E4; margin: 20px 0; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
`

var confirmedTmpl = template.Must(template.New("confirmed").Parse(`<!DOCTYPE html>
<html>
<head><style>` + baseStyle + `.header { background: #6EC1E4; }</style></head>
<body>
  <div class="container">
    <div class="header"><h1>Agendamento Confirmado!</h1></div>
    <div class="content">
      <p>Olá, <strong>{{.ClientName}}</strong>!</p>
      <p>Seu agendamento foi confirmado com sucesso.</p>
      <div class="info-box">
        <p><strong>Data:</strong> {{.Date}}</p>
        <p><strong>Horário:</strong> {{.Time}}</p>
        <p><strong>Serviço:</strong> {{.ServiceName}}</p>
      </div>
      <p>Por favor, chegue com 10 minutos de antecedência.</p>
      <p><strong>Equipe Belleza Estética</strong></p>
    </div>
    <div class="footer"><p>Este é um email automático, por favor não responda.</p></div>
  </div>
</body>
</html>`))

var cancelledTmpl = template.Must(template.New("cancelled").Parse(`<!DOCTYPE html>
<html>
<head><style>` + baseStyle + `.header { background: #e74c3c; } .info-box { border-left-color: #e74c3c; }</style></head>
<body>
  <div class="container">
    <div class="header"><h1>Agendamento Cancelado</h1></div>
    <div class="content">
      <p>Olá, <strong>{{.ClientName}}</strong>,</p>
      <p>Informamos que seu agendamento foi cancelado:</p>
      <div class="info-box">
        <p><strong>Data:</strong> {{.Date}}</p>
        <p><strong>Horário:</strong> {{.Time}}</p>
        <p><strong>Serviço:</strong> {{.ServiceName}}</p>
      </div>
      <p>Você pode fazer um novo agendamento a qualquer momento.</p>
      <p><strong>Equipe Belleza Estética</strong></p>
    </div>
    <div class="footer"><p>Este é um email automático, por favor não responda.</p></div>
  </div>
</body>
</html>`))

var rescheduledTmpl = template.Must(template.New("rescheduled").Parse(`<!DOCTYPE html>
<html>
<head><style>` + baseStyle + `.header { background: #f39c12; } .old { border-left-color: #e74c3c; } .new { border-left-color: #27ae60; }</style></head>
<body>
  <div class="container">
    <div class="header"><h1>Agendamento Reagendado</h1></div>
    <div class="content">
      <p>Olá, <strong>{{.ClientName}}</strong>!</p>
      <p>Seu agendamento foi reagendado. Confira as informações atualizadas:</p>
      <div class="info-box old">
        <p><strong>Agendamento anterior:</strong></p>
        <p>{{.OldDate}} às {{.OldTime}}</p>
      </div>
      <div class="info-box new">
        <p><strong>Data:</strong> {{.Date}}</p>
        <p><strong>Horário:</strong> {{.Time}}</p>
        <p><strong>Serviço:</strong> {{.ServiceName}}</p>
      </div>
      <p>Por favor, chegue com 10 minutos de antecedência.</p>
      <p><strong>Equipe Belleza Estética</strong></p>
    </div>
    <div class="footer"><p>Este é um email automático, por favor não responda.</p></div>
  </div>
</body>
</html>`))

func render(ev Event) (subject string, html string) {
	var (
		tmpl *template.Template
		buf  bytes.Buffer
	)

	switch ev.Kind {
	case EventConfirmed:
		subject = "Agendamento Confirmado - Belleza Estética"
		tmpl = confirmedTmpl
	case EventCancelled:
		subject = "Agendamento Cancelado - Belleza Estética"
		tmpl = cancelledTmpl
	case EventRescheduled:
		subject = "Agendamento Reagendado - Belleza Estética"
		tmpl = rescheduledTmpl
	default:
		return "", ""
	}

	if err := tmpl.Execute(&buf, ev); err != nil {
		return subject, ""
	}
	return subject, buf.String()
}
