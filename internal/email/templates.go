package email

import (
	"bytes"
	"html/template"

	"mamacare-api/internal/domain"
)

// Templates are parsed once at startup; user-supplied fields go through
// html/template escaping.
var (
	customerTmpl = template.Must(template.New("customer").Parse(customerBody))
	operatorTmpl = template.Must(template.New("operator").Parse(operatorBody))
)

const customerBody = `
<h3>Hello {{.Name}},</h3>
<p>You have booked the <strong>{{.ServicesUse}}</strong> service package.</p>
<p>We will contact you by phone: <strong>{{.Phone}}</strong></p>
<p>Your message: <i>{{if .Message}}{{.Message}}{{else}}No message{{end}}</i></p>
<br>
<p>Best regards,</p>
<p><strong>The Mamacare team</strong></p>
`

const operatorBody = `
<h3>New service booking</h3>
<p>Name: <strong>{{.Name}}</strong></p>
<p>Email: <strong>{{.Email}}</strong></p>
<p>Phone: <strong>{{.Phone}}</strong></p>
<p>Service package: <strong>{{.ServicesUse}}</strong></p>
<p>Message: <i>{{if .Message}}{{.Message}}{{else}}No message{{end}}</i></p>
{{with .ServiceDetails}}
<h4>Package details</h4>
<ul>
  <li>Package: {{.OriginalName}}</li>
  <li>Sessions: {{.OriginalPackage}}</li>
  <li>Price: {{.Price}}</li>
  <li>Duration: {{.Duration}}</li>
  <li>Service type: {{.ServiceType}}</li>
</ul>
{{end}}
`

// RenderCustomerConfirmation renders the confirmation addressed to the
// requester.
func RenderCustomerConfirmation(req domain.BookingRequest) (string, error) {
	var buf bytes.Buffer
	if err := customerTmpl.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderOperatorNotice renders the operator-facing copy carrying the full
// request, including the structured details block when supplied.
func RenderOperatorNotice(req domain.BookingRequest) (string, error) {
	var buf bytes.Buffer
	if err := operatorTmpl.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
