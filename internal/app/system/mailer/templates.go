// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"html/template"
)

// TestEmailData contains the data for the dashboard's test email.
type TestEmailData struct {
	AppName  string
	SentBy   string
	SMTPHost string
}

// TestEmail generates both plain text and HTML versions of the test email
// sent from the email configuration screen.
func TestEmail(data TestEmailData) (textBody, htmlBody string) {
	textBody = "This is a test email from " + data.AppName + ".\n\n" +
		"It was sent by " + data.SentBy + " to verify the SMTP configuration" +
		" (" + data.SMTPHost + ").\n\n" +
		"If you received this, outgoing email is working."

	var buf bytes.Buffer
	testHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

// ContactNotificationData contains the data for a contact form notification
// sent to the company inbox.
type ContactNotificationData struct {
	AppName string
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactNotification generates both plain text and HTML versions of the
// notification sent when a visitor submits the contact form.
func ContactNotification(data ContactNotificationData) (textBody, htmlBody string) {
	textBody = "New contact form submission on " + data.AppName + ".\n\n" +
		"Name: " + data.Name + "\n" +
		"Email: " + data.Email + "\n"
	if data.Phone != "" {
		textBody += "Phone: " + data.Phone + "\n"
	}
	textBody += "\nMessage:\n" + data.Message

	var buf bytes.Buffer
	contactHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

// WelcomeEmailData contains the data for a welcome email sent to new staff.
type WelcomeEmailData struct {
	AppName  string
	UserName string
	Role     string
	LoginURL string
}

// WelcomeEmail generates both plain text and HTML versions of a welcome email.
func WelcomeEmail(data WelcomeEmailData) (textBody, htmlBody string) {
	textBody = "Welcome to " + data.AppName + ", " + data.UserName + "!\n\n" +
		"Your account has been created with the role of " + data.Role + ".\n\n" +
		"To get started, sign in at:\n" + data.LoginURL + "\n\n" +
		"If you have any questions, please contact your administrator."

	var buf bytes.Buffer
	welcomeHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

var testHTMLTmpl = template.Must(template.New("test_email").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Test Email</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.AppName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">Test Email</h2>
              <p style="margin: 0 0 16px 0; font-size: 15px; line-height: 1.6; color: #52525b;">
                This is a test email sent by <strong>{{.SentBy}}</strong> to verify the SMTP configuration ({{.SMTPHost}}).
              </p>
              <p style="margin: 0; font-size: 14px; line-height: 1.6; color: #71717a;">
                If you received this, outgoing email is working.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

var contactHTMLTmpl = template.Must(template.New("contact_notification").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Contact Form Submission</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.AppName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">New Contact Form Submission</h2>
              <p style="margin: 0 0 8px 0; font-size: 15px; line-height: 1.6; color: #52525b;"><strong>Name:</strong> {{.Name}}</p>
              <p style="margin: 0 0 8px 0; font-size: 15px; line-height: 1.6; color: #52525b;"><strong>Email:</strong> {{.Email}}</p>
              {{if .Phone}}<p style="margin: 0 0 8px 0; font-size: 15px; line-height: 1.6; color: #52525b;"><strong>Phone:</strong> {{.Phone}}</p>{{end}}
              <p style="margin: 16px 0 8px 0; font-size: 15px; font-weight: 600; color: #18181b;">Message:</p>
              <p style="margin: 0; padding: 16px; background-color: #f4f4f5; border-radius: 6px; font-size: 15px; line-height: 1.6; color: #52525b; white-space: pre-wrap;">{{.Message}}</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

var welcomeHTMLTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Welcome</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.AppName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">Welcome, {{.UserName}}!</h2>
              <p style="margin: 0 0 24px 0; font-size: 15px; line-height: 1.6; color: #52525b;">
                Your account has been created with the role of <strong>{{.Role}}</strong>.
              </p>
              <!-- Button -->
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                <tr>
                  <td align="center" style="padding: 8px 0 24px 0;">
                    <a href="{{.LoginURL}}" style="display: inline-block; padding: 14px 32px; background-color: #0f3d5c; color: #ffffff; text-decoration: none; font-size: 15px; font-weight: 600; border-radius: 6px;">Sign In</a>
                  </td>
                </tr>
              </table>
              <p style="margin: 0; font-size: 14px; line-height: 1.6; color: #71717a;">
                If you have any questions, please contact your administrator.
              </p>
            </td>
          </tr>
          <!-- Footer -->
          <tr>
            <td style="padding: 24px 32px; background-color: #fafafa; border-top: 1px solid #e4e4e7; border-radius: 0 0 8px 8px;">
              <p style="margin: 0 0 8px 0; font-size: 12px; color: #a1a1aa; text-align: center;">
                If the button doesn't work, copy and paste this link into your browser:
              </p>
              <p style="margin: 0; font-size: 12px; color: #0f3d5c; text-align: center; word-break: break-all;">
                {{.LoginURL}}
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))
