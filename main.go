package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"

	"ieee-paper-app/config"
	"ieee-paper-app/internal/dispatcher"
	"ieee-paper-app/internal/docx"
	"ieee-paper-app/internal/helpers"
	"ieee-paper-app/internal/latex"
	"ieee-paper-app/internal/model"
	"ieee-paper-app/internal/parsing"
	"ieee-paper-app/internal/store"
)

func main() {
	// Load environment variables
	helpers.LoadEnv()
	log.Println("app env: " + helpers.GetEnvVariable("APP_ENV"))

	// Get environment variables
	sqsPrefix := helpers.GetEnvVariable("SQS_PREFIX")
	rendersQueueName := helpers.GetEnvVariable("RENDERS_QUEUE")
	sqsURL := fmt.Sprintf("%s/%s", sqsPrefix, rendersQueueName)
	awsSecretKey := helpers.GetEnvVariable("AWS_SECRET_ACCESS_KEY")
	awsAccessKey := helpers.GetEnvVariable("AWS_ACCESS_KEY_ID")
	awsRegion := helpers.GetEnvVariable("AWS_REGION")
	awsBucket := helpers.GetEnvVariable("AWS_BUCKET")
	counterTable := helpers.GetEnvVariable("RENDER_COUNTER_TABLE")
	dbHost := helpers.GetEnvVariable("DB_HOST")
	dbPort := helpers.GetEnvVariable("DB_PORT")
	dbUser := helpers.GetEnvVariable("DB_USERNAME")
	dbPassword := helpers.GetEnvVariable("DB_PASSWORD")
	dbName := helpers.GetEnvVariable("DB_DATABASE")
	log.Println("Environment variables loaded successfully.")

	// Set up mysql connection
	db, err := sql.Open("mysql", dbUser+":"+dbPassword+"@tcp("+dbHost+":"+dbPort+")/"+dbName)
	if err != nil {
		log.Fatal("Error opening database:", err)
	}
	drafts := store.New(db)
	// ping database
	err = drafts.GetDB().Ping()
	if err != nil {
		log.Fatal("Error pinging database:", err)
	} else {
		log.Println("Database pinged successfully.")
	}

	// Set up AWS session
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(awsRegion),
		Credentials: credentials.NewStaticCredentials(awsAccessKey, awsSecretKey, ""),
	})
	if err != nil {
		log.Fatal("Error creating AWS session:", err)
	}

	// Set up the queue service and the render counter
	sqsSvc := sqs.New(sess)
	counter, err := helpers.NewRenderCounter(sess, counterTable)
	if err != nil {
		log.Fatal("Error creating render counter:", err)
	}

	// Create a channel for communication between dispatcher and workers
	messageQueue := make(chan *sqs.Message, 10)

	// Start dispatcher and workers
	go dispatcher.Dispatcher(sqsSvc, sqsURL, messageQueue)
	go func() {
		numWorkers, _ := strconv.Atoi(helpers.GetEnvVariableOrDefault("WORKER_COUNT", "3"))
		err := dispatcher.RunWorkers(numWorkers, messageQueue, sqsSvc, sqsURL, awsBucket, drafts, counter)
		if err != nil {
			log.Println("Workers stopped:", err)
		}
	}()

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		host, _ := os.Hostname()
		c.JSON(http.StatusOK, gin.H{"hostname": host})
	})

	r.GET("/health", func(c *gin.Context) {
		healthy := drafts.GetDB().Ping() == nil
		c.JSON(http.StatusOK, gin.H{"healthy": healthy})
	})

	r.POST("/papers", func(c *gin.Context) {
		var paper model.Paper
		if err := c.ShouldBindJSON(&paper); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		draft, err := drafts.SaveDraft(&paper)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, draft)
	})

	r.GET("/papers", func(c *gin.Context) {
		list, err := drafts.ListDrafts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"drafts": list})
	})

	r.GET("/papers/:slug", func(c *gin.Context) {
		draft, err := drafts.FindDraftBySlug(c.Param("slug"))
		if err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draft)
	})

	r.PUT("/papers/:slug", func(c *gin.Context) {
		var paper model.Paper
		if err := c.ShouldBindJSON(&paper); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		draft, err := drafts.UpdateDraft(c.Param("slug"), &paper)
		if err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, draft)
	})

	r.DELETE("/papers/:slug", func(c *gin.Context) {
		if err := drafts.DeleteDraft(c.Param("slug")); err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.POST("/generate/word", func(c *gin.Context) {
		var paper model.Paper
		if err := c.ShouldBindJSON(&paper); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		serveRender(c, &paper, "docx")
	})

	r.POST("/generate/latex", func(c *gin.Context) {
		var paper model.Paper
		if err := c.ShouldBindJSON(&paper); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		serveRender(c, &paper, "latex")
	})

	r.GET("/papers/:slug/word", func(c *gin.Context) {
		serveDraftRender(c, drafts, "docx")
	})

	r.GET("/papers/:slug/latex", func(c *gin.Context) {
		serveDraftRender(c, drafts, "latex")
	})

	r.POST("/papers/:slug/render", func(c *gin.Context) {
		job := dispatcher.RenderJob{Slug: c.Param("slug"), Format: c.DefaultQuery("format", "docx")}
		if !job.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "format must be docx or latex"})
			return
		}
		if _, err := drafts.FindDraftBySlug(job.Slug); err != nil {
			c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		body, _ := json.Marshal(job)
		_, err := sqsSvc.SendMessage(&sqs.SendMessageInput{
			QueueUrl:    aws.String(sqsURL),
			MessageBody: aws.String(string(body)),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"queued": job})
	})

	r.POST("/references/lookup", func(c *gin.Context) {
		var req struct {
			DOI string `json:"doi"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.DOI == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doi is required"})
			return
		}
		data, err := parsing.CrossRefDataDOI(req.DOI)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"metadata":  data,
			"reference": parsing.FormatIEEEReference(data),
		})
	})

	r.POST("/validate", func(c *gin.Context) {
		var req struct {
			Abstract   string   `json:"abstract"`
			References []string `json:"references"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		refResults := make([]bool, len(req.References))
		for i, ref := range req.References {
			refResults[i] = model.ValidateReference(ref)
		}
		c.JSON(http.StatusOK, gin.H{
			"abstract_ok":   model.ValidateAbstract(req.Abstract),
			"references_ok": refResults,
		})
	})

	r.Run()
}

func draftErrorStatus(err error) int {
	if errors.Is(err, store.ErrDraftNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// serveRender renders a paper inline and writes it as a download with the
// fixed artifact filename.
func serveRender(c *gin.Context, paper *model.Paper, format string) {
	var (
		artifact    []byte
		err         error
		filename    string
		contentType string
	)
	if format == "latex" {
		artifact, err = latex.Generate(paper)
		filename = "ieee_paper.tex"
		contentType = "application/x-tex"
	} else {
		artifact, err = docx.Generate(paper, config.IEEE())
		filename = "ieee_paper.docx"
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	if err != nil {
		var missing *model.MissingRequiredFieldError
		var embed *docx.AssetEmbedError
		if errors.As(err, &missing) || errors.As(err, &embed) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, artifact)
}

func serveDraftRender(c *gin.Context, drafts *store.Store, format string) {
	draft, err := drafts.FindDraftBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(draftErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	paper, err := draft.Paper()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	serveRender(c, paper, format)
}
