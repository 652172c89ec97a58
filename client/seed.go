package client

import (
	"time"

	"github.com/easyonboard/backend/internal/model"
)

// DefaultTopics 内置的欢迎主题
// 缓存为空且服务端不可达时作为初始内容展示
func DefaultTopics() []model.Topic {
	now := time.Now()
	return []model.Topic{
		{
			ID:    "welcome-1",
			Title: "Welcome to the Team",
			Content: `# Welcome to Our Development Team!

We're excited to have you join our team! This onboarding process will help you get up to speed with our tools, processes, and culture.

## What You'll Learn

- Team structure and communication channels
- Development environment setup
- Our coding standards and best practices
- Git workflow and collaboration tools

## Need Help?

If you have any questions during this process, ask in our #onboarding channel or schedule time with your mentor.

Welcome aboard!`,
			UploadedAt: now,
			Completed:  false,
		},
		{
			ID:    "environment-2",
			Title: "Development Environment Setup",
			Content: `# Development Environment Setup

Let's get your development environment ready! Follow these steps to set up all the tools you'll need.

## Required Software

1. A code editor with formatter and linter integration
2. Git, configured with your name and company email
3. The language runtimes listed in the project README

## Project Setup

Clone the main repository, install dependencies, and copy the example environment file before starting the dev server.

## Verification

If the dev server, tests, and lint checks all run cleanly, your environment is ready.`,
			UploadedAt: now,
			Completed:  false,
		},
		{
			ID:    "standards-3",
			Title: "Coding Standards & Git Workflow",
			Content: `# Coding Standards & Git Workflow

Let's review our team's coding standards and Git workflow to ensure consistent, high-quality code.

## Code Style Guidelines

- Keep functions small and focused
- Name things by what they do
- Write tests for new functionality

## Git Workflow

Branch from main, follow conventional commit messages, and open a pull request with a clear description. Merge after review approval.

Ready to start coding? Let's move on to your first task!`,
			UploadedAt: now,
			Completed:  false,
		},
	}
}
