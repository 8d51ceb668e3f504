package gemini

import (
	"fmt"
	"time"
)

// TaskParsingSystemPrompt is the instruction sent to Gemini for task extraction.
const TaskParsingSystemPrompt = `You are a task prioritization agent. Your job is to extract structured tasks from user input.

RULES:
1. Parse the input text and extract all individual tasks.
2. For each task, identify:
   - title: Short, clear task name (required)
   - description: Additional details (can be empty string)
   - impact: MUST be exactly one of "low", "medium", "high"
   - deadline: Calendar date "YYYY-MM-DD", or a relative phrase ("today", "tomorrow", "in 3 days", "next monday"), or empty string when none is mentioned
   - effort: "S", "M", "L" or a number of minutes such as "25m"
   - blocked: true only when the user says the task is waiting on someone or something
   - tags: Array of short lowercase tags inferred from context (may be empty)

3. Return ONLY a valid JSON array. No markdown, no code blocks, no explanation text.
4. If no impact is mentioned, use "medium". If no effort is mentioned, use "M".

EXAMPLE INPUT:
"pay the electricity bill today, quick one. finish quarterly report by friday - big deal. waiting on Anna for the design review"

EXAMPLE OUTPUT:
[
  {"title": "Pay electricity bill", "description": "", "impact": "medium", "deadline": "today", "effort": "S", "blocked": false, "tags": ["finance"]},
  {"title": "Finish quarterly report", "description": "", "impact": "high", "deadline": "next friday", "effort": "L", "blocked": false, "tags": ["work"]},
  {"title": "Design review", "description": "Waiting on Anna", "impact": "medium", "deadline": "", "effort": "M", "blocked": true, "tags": ["work"]}
]`

// timeContextTemplate anchors relative dates: today, weekday, this week (Monday to Sunday), tomorrow.
const timeContextTemplate = `

TIME CONTEXT (USE FOR RELATIVE DATE RESOLUTION):
- Today: %s (%s)
- This week: %s to %s
- Tomorrow: %s`

const dateFormat = "2006-01-02"

// BuildTaskParsingPrompt builds the full prompt for task extraction.
func BuildTaskParsingPrompt(userInput string, today time.Time) string {
	return TaskParsingSystemPrompt + buildTimeContext(today) +
		"\n\nNow parse the following input and return ONLY the JSON array:\n" + userInput
}

func buildTimeContext(today time.Time) string {
	weekday := int(today.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := today.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	return fmt.Sprintf(timeContextTemplate,
		today.Format(dateFormat),
		today.Weekday().String(),
		weekStart.Format(dateFormat),
		weekEnd.Format(dateFormat),
		today.AddDate(0, 0, 1).Format(dateFormat),
	)
}
