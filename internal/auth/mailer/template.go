package mailer

import (
	"bytes"
	"html/template"
)

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body {
      font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      margin: 0;
      padding: 0;
      color: #1f2937;
      background-color: #f3f4f6;
      line-height: 1.6;
    }
    .container {
      max-width: 600px;
      margin: 0 auto;
      background-color: white;
      border-radius: 12px;
      overflow: hidden;
    }
    .header {
      background: linear-gradient(135deg, #10b981, #059669);
      color: white;
      padding: 20px;
      text-align: center;
    }
    .content {
      padding: 30px;
      background-color: #ffffff;
    }
    .otp-box {
      background-color: #f0fdf4;
      border: 2px dashed #10b981;
      padding: 20px;
      text-align: center;
      border-radius: 10px;
      margin: 20px 0;
    }
    .otp-code {
      font-size: 40px;
      font-weight: 700;
      color: #065f46;
      letter-spacing: 0.1em;
      background-color: #ecfdf5;
      padding: 15px;
      border-radius: 8px;
    }
    .footer {
      background-color: #f3f4f6;
      color: #6b7280;
      text-align: center;
      padding: 15px;
      font-size: 12px;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>KomyuLink</h1></div>
    <div class="content">
      <p>Use the code below to verify your email address. It expires in 5 minutes.</p>
      <div class="otp-box"><span class="otp-code">{{.Code}}</span></div>
      <p>If you did not request this code, you can safely ignore this email.</p>
    </div>
    <div class="footer">KomyuLink &middot; EventSync</div>
  </div>
</body>
</html>`))

func renderOTPBody(code string) (string, error) {
	var buf bytes.Buffer
	if err := otpTemplate.Execute(&buf, struct{ Code string }{Code: code}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
