package authenticator

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// datastarScript is the client bundle driving the live code box.
const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// PageParams holds the data rendered by Page.
type PageParams struct {
	Issuer    string
	Account   string
	Secret    string
	URI       string
	QRDataURI string
	Code      CurrentCode
}

// Page renders the index page: the QR image, the provisioning details and
// a code box refreshed over the code stream.
func Page(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		e := templ.EscapeString[string]
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<script type="module" src="%s"></script>
</head>
<body>
<main>
<h1>%s</h1>
<p>%s</p>
<img src="%s" alt="Provisioning QR code" width="256" height="256">
<p><code id="secret">%s</code></p>
<p><a href="%s">otpauth URI</a></p>
<div data-init="@get('/code/%s/stream')">
`, e(p.Issuer), datastarScript, e(p.Issuer), e(p.Account), e(p.QRDataURI), e(p.Secret), e(p.URI), e(p.Secret)); err != nil {
			return err
		}
		if err := CodeBox(p.Code).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div>\n</main>\n</body>\n</html>\n")
		return err
	})
}

// CodeBox renders the current code. The element id lets DataStar morph it
// in place on every stream tick.
func CodeBox(c CurrentCode) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div id="code"><span class="code">%s</span> <small>expires in %ds</small></div>`,
			templ.EscapeString(c.Code), c.ExpiresIn)
		return err
	})
}
