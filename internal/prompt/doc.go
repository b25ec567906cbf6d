// Package prompt asks the user questions on the terminal. Prompter is the seam
// the scaffolder talks to; SurveyPrompter renders the questions with survey and
// tests substitute a scripted implementation.
package prompt
