package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/wellspring-labs/wellspring/internal/models"
)

// ErrRenderFailed marks a recoverable PDF conversion failure; the HTML
// document is still available to the caller.
var ErrRenderFailed = errors.New("pdf conversion failed")

const reportDateLayout = "2006-01-02"

type reportView struct {
	ReportID    string
	ReportDate  string
	CurrentYear int
	Gender      string
	Age         string
	Height      string
	Weight      string
	Symptoms    []string
	BodySystems []string
	Conditions  []string
	Answers     []answerView
	Explanation string
	Supplements []supplementView
}

type answerView struct {
	Question string
	Answer   string
}

type supplementView struct {
	Name   string
	Dosage string
	Usage  string
}

// RenderService turns stored reports into HTML documents and, on demand,
// PDF artifacts named after the report id.
type RenderService struct {
	template   *template.Template
	reportsDir string
	now        func() time.Time
	convert    func(ctx context.Context, htmlPath string, pdfPath string) error
}

func NewRenderService(reportsDir string) (*RenderService, error) {
	parsed, err := template.New("report").Parse(reportTemplateHTML)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &RenderService{
		template:   parsed,
		reportsDir: reportsDir,
		now:        time.Now,
		convert:    convertHTMLToPDF,
	}, nil
}

// UseConverter swaps the HTML to PDF converter.
func (service *RenderService) UseConverter(convert func(ctx context.Context, htmlPath string, pdfPath string) error) {
	service.convert = convert
}

// RenderHTML maps a report through the fixed template. Missing fields render
// as empty cells; sections backed by empty lists are omitted entirely.
func (service *RenderService) RenderHTML(report models.Report) (string, error) {
	view := buildReportView(report, service.now())
	var output bytes.Buffer
	if err := service.template.Execute(&output, view); err != nil {
		return "", fmt.Errorf("render report %s: %w", report.ReportID, err)
	}
	return output.String(), nil
}

func (service *RenderService) HTMLPath(reportID string) string {
	return filepath.Join(service.reportsDir, reportID+".html")
}

func (service *RenderService) PDFPath(reportID string) string {
	return filepath.Join(service.reportsDir, reportID+".pdf")
}

// RenderPDF writes the HTML artifact for the report and converts it to PDF,
// returning the PDF path. Conversion failure wraps ErrRenderFailed.
func (service *RenderService) RenderPDF(ctx context.Context, report models.Report) (string, error) {
	html, err := service.RenderHTML(report)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(service.reportsDir, 0o755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	htmlPath := service.HTMLPath(report.ReportID)
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write html artifact for %s: %w", report.ReportID, err)
	}

	pdfPath := service.PDFPath(report.ReportID)
	if err := service.convert(ctx, htmlPath, pdfPath); err != nil {
		log.Printf("render: pdf conversion failed for %s: %v", report.ReportID, err)
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return pdfPath, nil
}

func buildReportView(report models.Report, now time.Time) reportView {
	basic := report.Profile.BasicInfo
	recommendation := report.Recommendation

	supplements := make([]supplementView, 0, len(recommendation.Supplements))
	for _, name := range recommendation.Supplements {
		supplements = append(supplements, supplementView{
			Name:   name,
			Dosage: recommendation.Dosage[name],
			Usage:  recommendation.Usage[name],
		})
	}

	answers := make([]answerView, 0, len(report.Profile.Answers))
	for question, answer := range report.Profile.Answers {
		answers = append(answers, answerView{Question: question, Answer: answer})
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].Question < answers[j].Question })

	return reportView{
		ReportID:    report.ReportID,
		ReportDate:  now.Format(reportDateLayout),
		CurrentYear: now.Year(),
		Gender:      genderLabel(basic.Gender),
		Age:         basic.Age,
		Height:      basic.Height,
		Weight:      basic.Weight,
		Symptoms:    report.Profile.Symptoms,
		BodySystems: report.Profile.BodySystemIssues,
		Conditions:  report.Profile.SpecificConditions,
		Answers:     answers,
		Explanation: recommendation.Explanation,
		Supplements: supplements,
	}
}

func genderLabel(code string) string {
	switch code {
	case "male":
		return "男"
	case "female":
		return "女"
	case "other":
		return "其他"
	default:
		return "未知"
	}
}

func convertHTMLToPDF(ctx context.Context, htmlPath string, pdfPath string) error {
	generator, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return fmt.Errorf("init wkhtmltopdf: %w", err)
	}

	page := wkhtmltopdf.NewPage(htmlPath)
	page.EnableLocalFileAccess.Set(true)
	generator.AddPage(page)

	if err := generator.CreateContext(ctx); err != nil {
		return fmt.Errorf("convert %s: %w", htmlPath, err)
	}
	return generator.WriteFile(pdfPath)
}
