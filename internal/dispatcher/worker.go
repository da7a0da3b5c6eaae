package dispatcher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/sqs"
	"golang.org/x/sync/errgroup"

	"ieee-paper-app/config"
	"ieee-paper-app/internal/docx"
	"ieee-paper-app/internal/helpers"
	"ieee-paper-app/internal/latex"
	"ieee-paper-app/internal/store"
)

var (
	lastRenderTime   time.Time
	lastRenderTimeMu sync.Mutex
)

// RunWorkers starts n workers draining the message queue and blocks until
// they exit.
func RunWorkers(n int, messageQueue <-chan *sqs.Message, svc *sqs.SQS, sqsURL, s3Bucket string, drafts *store.Store, counter *helpers.RenderCounter) error {
	var g errgroup.Group
	for i := 1; i <= n; i++ {
		id := i
		g.Go(func() error {
			Worker(id, messageQueue, svc, sqsURL, s3Bucket, drafts, counter)
			return nil
		})
	}
	return g.Wait()
}

func Worker(id int, messageQueue <-chan *sqs.Message, svc *sqs.SQS, sqsURL, s3Bucket string, drafts *store.Store, counter *helpers.RenderCounter) {
	awsRegion := helpers.GetEnvVariable("AWS_REGION")
	minGapBetweenRenders := helpers.GetEnvVariableOrDefault("MINIMUM_GAP_BETWEEN_RENDERS_SECONDS", "0")
	minGap, err := time.ParseDuration(minGapBetweenRenders + "s")
	if err != nil {
		log.Fatalf("Error parsing MINIMUM_GAP_BETWEEN_RENDERS_SECONDS: %v", err)
	}

	log.Printf("Starting worker %d...\n", id)

	for {
		message := <-messageQueue
		processMessage(id, message, svc, sqsURL, s3Bucket, awsRegion, minGap, drafts, counter)
	}
}

func createAWSSession(region string) *session.Session {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(region),
	}))
	return sess
}

func uploadArtifactToS3(s3Svc *s3.S3, bucket, key string, data []byte) error {
	_, err := s3Svc.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	return err
}

// renderJob produces the artifact bytes for a job from its stored draft.
func renderJob(job *RenderJob, drafts *store.Store) ([]byte, error) {
	draft, err := drafts.FindDraftBySlug(job.Slug)
	if err != nil {
		return nil, err
	}
	paper, err := draft.Paper()
	if err != nil {
		return nil, err
	}

	if job.Format == "latex" {
		return latex.Generate(paper)
	}
	return docx.Generate(paper, config.IEEE())
}

func processMessage(id int, message *sqs.Message, svc *sqs.SQS, sqsURL, s3Bucket, awsRegion string, minGap time.Duration, drafts *store.Store, counter *helpers.RenderCounter) {
	var job RenderJob
	if err := json.Unmarshal([]byte(*message.Body), &job); err != nil {
		log.Println("Error decoding JSON message:", err)
		return
	}
	if !job.IsValid() {
		log.Printf("Worker %d dropping invalid job: %s\n", id, *message.Body)
		return
	}

	fmt.Printf("Worker %d received job. Slug: %s. Format: %s\n", id, job.Slug, job.Format)

	lastRenderTimeMu.Lock()
	timeSinceLastRender := time.Since(lastRenderTime)
	lastRenderTimeMu.Unlock()

	if timeSinceLastRender < minGap {
		sleepTime := minGap - timeSinceLastRender
		log.Printf("Worker %d sleeping for %v to meet the minimum gap between renders\n", id, sleepTime)
		time.Sleep(sleepTime)
	}

	artifact, err := renderJob(&job, drafts)
	if err != nil {
		log.Println("Error rendering job:", err)
		// put the message back so another worker can retry once the draft
		// is fixed or visible again
		_, err = svc.ChangeMessageVisibility(&sqs.ChangeMessageVisibilityInput{
			QueueUrl:          aws.String(sqsURL),
			ReceiptHandle:     message.ReceiptHandle,
			VisibilityTimeout: aws.Int64(30),
		})
		if err != nil {
			log.Println("Error putting message back to the queue:", err)
		}
		return
	}

	lastRenderTimeMu.Lock()
	lastRenderTime = time.Now()
	lastRenderTimeMu.Unlock()

	sess := createAWSSession(awsRegion)
	s3Svc := s3.New(sess)

	key := fmt.Sprintf("renders/%s/ieee_paper.%s", job.Slug, job.Extension())
	if err := uploadArtifactToS3(s3Svc, s3Bucket, key, artifact); err != nil {
		log.Println("Error uploading artifact to S3:", err)
		log.Printf("Bucket: %s, Key: %s\n", s3Bucket, key)
		return
	}

	if err := counter.Increment(job.Slug); err != nil {
		log.Println("Error incrementing render counter:", err)
	}

	_, err = svc.DeleteMessage(&sqs.DeleteMessageInput{
		QueueUrl:      aws.String(sqsURL),
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		log.Println("Error deleting message from the queue:", err)
	}
}
