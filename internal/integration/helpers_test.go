package integration

import (
	"time"

	"career-match/internal/pipeline"

	"github.com/gofiber/fiber/v3"
)

func fiberTestConfig() fiber.TestConfig {
	return fiber.TestConfig{Timeout: 10 * time.Second}
}

func pipelineParams() pipeline.RunParams {
	return pipeline.RunParams{Workers: 2, Limit: 50}
}
