package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/foundryai/studio-api/internal/models"
)

// Template helpers build the Message for each transactional email. They are
// pure formatting: no sending, no side effects.

const footer = `
  <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid rgba(255,255,255,0.1);">
    <p style="color: #64748b; font-size: 12px; margin: 0;">
      © FoundryAI. Building the Future, Together.<br>
      Bangalore, India
    </p>
  </div>`

func wrap(body string) string {
	return fmt.Sprintf(`
<div style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #0a0f1c; padding: 40px; border-radius: 16px;">
  <div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #ffffff; font-size: 28px; margin: 0;">Foundry<span style="color: #0066ff;">AI</span></h1>
  </div>
  <div style="background: rgba(26, 34, 53, 0.8); border-radius: 12px; padding: 30px;">%s</div>%s
</div>`, body, footer)
}

func esc(s string) string {
	return html.EscapeString(s)
}

func orNot(s string) string {
	if s == "" {
		return "Not provided"
	}
	return esc(s)
}

func formatDate(m *models.Meeting) string {
	return m.Date.Format("Monday, January 2, 2006")
}

// ApplicationAlert notifies the admin about a new application, with the
// resume link when one was uploaded.
func ApplicationAlert(app *models.Application, to, from string) Message {
	resume := "<p><strong>Resume:</strong> Not uploaded</p>"
	if app.ResumeURL != "" {
		resume = fmt.Sprintf(`<p><strong>Resume:</strong> <a href="%s" target="_blank">View Resume</a></p>`, esc(app.ResumeURL))
	}
	body := fmt.Sprintf(`
<h2>New Job Application</h2>
<p><strong>Position:</strong> %s</p>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Experience:</strong> %s</p>
%s
<p><strong>Application ID:</strong> %d</p>`,
		esc(app.Position), esc(app.Name), esc(app.Email), orNot(app.Phone), orNot(app.Experience), resume, app.ID)

	return Message{
		To:      to,
		From:    from,
		Subject: fmt.Sprintf("Job Application: %s", app.Position),
		HTML:    body,
	}
}

// ApplicationAck is the auto-reply to the applicant.
func ApplicationAck(app *models.Application, from string) Message {
	body := fmt.Sprintf(`
<h2 style="color: #ffffff; margin-top: 0;">Hello %s!</h2>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7;">
  Thank you for your interest in joining <strong style="color: #0066ff;">FoundryAI</strong>!
  We've received your application for the position of:
</p>
<div style="border: 1px solid rgba(0, 102, 255, 0.3); border-radius: 10px; padding: 20px; text-align: center; margin: 20px 0;">
  <h3 style="color: #ffffff; margin: 0; font-size: 20px;">%s</h3>
</div>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7;">
  Our hiring team will carefully review your application. If your profile matches our
  requirements, we'll reach out to schedule an initial conversation within 5-7 business days.
</p>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7; margin-bottom: 0;">
  Best of luck,<br><strong style="color: #ffffff;">The FoundryAI Talent Team</strong>
</p>`, esc(app.Name), esc(app.Position))

	return Message{
		To:      app.Email,
		From:    from,
		Subject: fmt.Sprintf("Application Received - %s at FoundryAI", app.Position),
		HTML:    wrap(body),
	}
}

// MeetingAlert notifies the admin about a freshly scheduled call.
func MeetingAlert(m *models.Meeting, to, from string) Message {
	services := "<li>Not specified</li>"
	if len(m.Services) > 0 {
		var items []string
		for _, s := range m.Services {
			items = append(items, "<li>"+esc(s)+"</li>")
		}
		services = strings.Join(items, "")
	}
	body := fmt.Sprintf(`
<h2 style="color: #0066ff; margin-top: 0;">Meeting Details</h2>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<h3 style="color: #0066ff;">Client Information</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Industry:</strong> %s</p>
<h3 style="color: #0066ff;">Services Interested In</h3>
<ul>%s</ul>
<p><strong>Social Media:</strong> %s</p>
<p><strong>Documents:</strong> %s</p>`,
		formatDate(m), esc(m.Time), esc(m.Name), esc(m.Email), esc(m.Phone), esc(m.Industry),
		services, orNot(m.SocialMedia), orNot(m.Documents))

	return Message{
		To:      to,
		From:    from,
		Subject: fmt.Sprintf("🗓️ New Meeting Scheduled: %s - %s at %s", m.Name, formatDate(m), m.Time),
		HTML:    wrap(body),
	}
}

// MeetingConfirmation is the auto-reply to the client who booked.
func MeetingConfirmation(m *models.Meeting, from string) Message {
	body := fmt.Sprintf(`
<h2 style="color: #ffffff; margin-top: 0;">Your Meeting is Confirmed!</h2>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7;">Hello %s,</p>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7;">
  Your consultation call with FoundryAI has been scheduled.
</p>
<div style="border: 1px solid rgba(0, 102, 255, 0.3); border-radius: 10px; padding: 20px; text-align: center; margin: 20px 0;">
  <h3 style="color: #ffffff; margin: 0;">📅 %s</h3>
  <p style="color: #0066ff; font-size: 20px; margin: 10px 0;">🕐 %s</p>
</div>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7;">
  We'll reach out via the contact details you provided. Please make sure you're
  available at the scheduled time.
</p>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7; margin-bottom: 0;">
  Looking forward to speaking with you!<br><strong style="color: #ffffff;">The FoundryAI Team</strong>
</p>`, esc(m.Name), formatDate(m), esc(m.Time))

	return Message{
		To:      m.Email,
		From:    from,
		Subject: fmt.Sprintf("Meeting Confirmed - %s at %s", formatDate(m), m.Time),
		HTML:    wrap(body),
	}
}

// MeetingCancellation informs the client that their call was cancelled.
func MeetingCancellation(m *models.Meeting, from string) Message {
	body := fmt.Sprintf(`
<h2 style="color: #ffffff; margin-top: 0;">Meeting Cancelled</h2>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7;">Hello %s,</p>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7;">
  Unfortunately we had to cancel your consultation call scheduled for
  <strong style="color: #ffffff;">%s at %s</strong>.
</p>
<div style="border-left: 4px solid #f59e0b; padding: 15px 20px; margin: 25px 0;">
  <p style="color: #ffffff; margin: 0; font-size: 14px;"><strong>Reason:</strong>
    <span style="color: #94a3b8;">%s</span>
  </p>
</div>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7; margin-bottom: 0;">
  We'd love to reschedule - just book another slot on our website.<br>
  <strong style="color: #ffffff;">The FoundryAI Team</strong>
</p>`, esc(m.Name), formatDate(m), esc(m.Time), esc(m.CancellationReason))

	return Message{
		To:      m.Email,
		From:    from,
		Subject: fmt.Sprintf("Meeting Cancelled - %s at %s", formatDate(m), m.Time),
		HTML:    wrap(body),
	}
}

// ContactAlert forwards a contact-form submission to the admin inbox.
func ContactAlert(name, email, phone, company, subject, message, to, from string) Message {
	if subject == "" {
		subject = "General Inquiry"
	}
	body := fmt.Sprintf(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Company:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		esc(name), esc(email), orNot(phone), orNot(company), esc(subject), esc(message))

	return Message{
		To:      to,
		From:    from,
		Subject: fmt.Sprintf("New Contact: %s", subject),
		HTML:    body,
	}
}

// ContactAck is the auto-reply to the person who wrote in.
func ContactAck(name, email, from string) Message {
	body := fmt.Sprintf(`
<h2 style="color: #ffffff; margin-top: 0;">Hello %s! 👋</h2>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7;">
  Thank you for reaching out to <strong style="color: #0066ff;">FoundryAI</strong>!
  We've received your message and our team will get back to you within 24-48
  business hours.
</p>
<p style="color: #94a3b8; font-size: 16px; line-height: 1.7; margin-bottom: 0;">
  Best regards,<br><strong style="color: #ffffff;">The FoundryAI Team</strong>
</p>`, esc(name))

	return Message{
		To:      email,
		From:    from,
		Subject: "Thank You for Contacting FoundryAI - We've Received Your Message",
		HTML:    wrap(body),
	}
}
