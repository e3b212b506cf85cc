package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/nahomt24/addis_estates/config"
	"github.com/nahomt24/addis_estates/models"
	"gorm.io/gorm"
)

// GenerateActivationCertificate renders and stores the certificate handed to a
// broker once their activation deposit is verified. Runs asynchronously after
// the verification commit; a failure here never rolls back the verification.
func GenerateActivationCertificate(db *gorm.DB, brokerID uint) {
	if config.Config("CLOUDINARY_URL") == "" {
		log.Println("Cloudinary not configured, skipping activation certificate generation.")
		return
	}

	var broker models.User
	if err := db.Preload("BrokerProfile").First(&broker, "id = ?", brokerID).Error; err != nil {
		log.Printf("🔥 Failed to load broker %d for certificate: %v", brokerID, err)
		return
	}
	if broker.BrokerProfile == nil {
		log.Printf("🔥 Broker %d has no profile, cannot generate certificate", brokerID)
		return
	}

	htmlData, err := renderCertificateHTML(broker)
	if err != nil {
		log.Printf("🔥 Failed to render certificate HTML: %v", err)
		return
	}

	pdfBytes, err := printPDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate PDF: %v", err)
		return
	}

	uploadURL, err := uploadCertificate(pdfBytes, brokerID)
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return
	}

	if err := db.Model(&models.BrokerProfile{}).
		Where("user_id = ?", brokerID).
		Update("activation_certificate_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to store certificate URL for broker %d: %v", brokerID, err)
		return
	}

	log.Printf("✅ Generated activation certificate for broker %d.", brokerID)
}

func renderCertificateHTML(broker models.User) (string, error) {
	tmpl, err := template.ParseFiles("templates/activation_certificate.html")
	if err != nil {
		return "", err
	}

	companyName := broker.Name
	if broker.BrokerProfile.CompanyName != nil && *broker.BrokerProfile.CompanyName != "" {
		companyName = *broker.BrokerProfile.CompanyName
	}

	data := struct {
		BrokerName     string
		CompanyName    string
		LicenseNumber  string
		ActivationDate string
	}{
		BrokerName:     broker.Name,
		CompanyName:    companyName,
		LicenseNumber:  notesOrDash(broker.BrokerProfile.LicenseNumber),
		ActivationDate: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func printPDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificate(fileBytes []byte, brokerID uint) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%d_%s", brokerID, uuid.New().String()),
		Folder:       "addis_estates_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
