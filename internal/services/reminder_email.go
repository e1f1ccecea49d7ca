package services

import (
	"bytes"
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/wellspring-labs/wellspring/internal/models"
)

// ReminderEmailSubject is the subject line of every follow-up reminder.
const ReminderEmailSubject = "健康評估跟進提醒"

const reminderEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
    body { font-family: Arial, "Microsoft JhengHei", sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    h1 { color: #2c3e50; }
    h2 { color: #3498db; }
    .highlight { background-color: #f8f9fa; padding: 15px; border-radius: 5px; }
    .button { display: inline-block; background-color: #3498db; color: white; padding: 10px 20px;
              text-decoration: none; border-radius: 5px; margin-top: 20px; }
    .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; }
</style>
</head>
<body>
<div class="container">
    <h1>健康評估跟進提醒</h1>
    <p>親愛的用戶：</p>
    <p>距離您上次的健康評估已經有一段時間了，我們建議您進行一次健康重新評估，以了解您的健康狀況變化並調整保健方案。</p>

    <div class="highlight">
        <h2>您上次的健康評估摘要</h2>
        <p><strong>基本信息：</strong> {{.Gender}}性，{{.Age}}歲</p>
        <p><strong>主要健康問題：</strong> {{.Symptoms}}</p>
        <p><strong>推薦保健品：</strong> {{.Supplements}}</p>
    </div>

    <p>定期的健康評估可以幫助您：</p>
    <ul>
        <li>追蹤健康狀況的改善情況</li>
        <li>調整保健品使用方案</li>
        <li>發現潛在的健康問題</li>
        <li>獲得更個性化的健康建議</li>
    </ul>

    {{if .AssessmentURL}}<a href="{{.AssessmentURL}}" class="button">立即進行健康重新評估</a>{{end}}

    <div class="footer">
        <p>此郵件是系統自動發送的。如果您有任何問題，請回覆此郵件或聯繫我們的客服團隊。</p>
        {{if .OptOutURL}}<p>如不想再收到提醒，請<a href="{{.OptOutURL}}">點此取消訂閱</a>。</p>{{end}}
        <p>&copy; {{.CurrentYear}} 健康問卷與保健品推薦系統. 保留所有權利.</p>
    </div>
</div>
</body>
</html>
`

var reminderEmailTemplate = template.Must(template.New("reminder-email").Parse(reminderEmailHTML))

type reminderEmailView struct {
	Gender        string
	Age           string
	Symptoms      string
	Supplements   string
	AssessmentURL string
	OptOutURL     string
	CurrentYear   int
}

// buildReminderEmail renders the follow-up email body. The report may be nil
// when the underlying record was removed; the summary block then degrades to
// its placeholder phrases.
func buildReminderEmail(report *models.Report, assessmentURL string, optOutURL string, now time.Time) string {
	view := reminderEmailView{
		Symptoms:      "無特定症狀",
		Supplements:   "無特定推薦",
		AssessmentURL: assessmentURL,
		OptOutURL:     optOutURL,
		CurrentYear:   now.Year(),
	}
	if report != nil {
		view.Gender = genderLabel(report.Profile.BasicInfo.Gender)
		view.Age = report.Profile.BasicInfo.Age
		if len(report.Profile.Symptoms) > 0 {
			view.Symptoms = strings.Join(report.Profile.Symptoms, ", ")
		}
		supplements := report.Recommendation.Supplements
		if len(supplements) > 3 {
			supplements = supplements[:3]
		}
		if len(supplements) > 0 {
			view.Supplements = strings.Join(supplements, ", ")
		}
	}

	var rendered bytes.Buffer
	if err := reminderEmailTemplate.Execute(&rendered, view); err != nil {
		log.Printf("reminder: email template failed: %v", err)
		return "<html><body><h1>健康評估跟進提醒</h1><p>親愛的用戶：距離您上次的健康評估已經有一段時間了，我們建議您進行一次健康重新評估。</p></body></html>"
	}
	return rendered.String()
}
