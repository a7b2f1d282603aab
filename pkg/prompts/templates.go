package prompts

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/datalens-ai/datalens-engine/pkg/models"
)

// TemplateSet holds the instruction text for each assistant task. Fields left
// empty in an override file keep their built-in defaults.
type TemplateSet struct {
	StatisticalTest string `yaml:"statistical_test"`
	Visualization   string `yaml:"visualization"`
}

const defaultStatisticalTest = `You are a statistical consultant. Given the dataset described below, suggest the most appropriate statistical tests to run. For each suggestion explain what question it answers, its assumptions, and provide runnable example code.`

const defaultVisualization = `You are a data visualization expert. Improve the selected plotting code using the dataset described below. Suggest clearer encodings, better labels and accessible styling, and provide the full improved code.`

// DefaultTemplates returns the built-in template set.
func DefaultTemplates() TemplateSet {
	return TemplateSet{
		StatisticalTest: defaultStatisticalTest,
		Visualization:   defaultVisualization,
	}
}

// LoadTemplates reads template overrides from a YAML file. A missing file is
// not an error; it simply yields the defaults. Empty fields in the file fall
// back to their defaults so a partial override file stays valid.
func LoadTemplates(path string) (TemplateSet, error) {
	templates := DefaultTemplates()
	if path == "" {
		return templates, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return templates, nil
		}
		return templates, fmt.Errorf("read templates file: %w", err)
	}

	var overrides TemplateSet
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return templates, fmt.Errorf("parse templates file: %w", err)
	}

	if overrides.StatisticalTest != "" {
		templates.StatisticalTest = overrides.StatisticalTest
	}
	if overrides.Visualization != "" {
		templates.Visualization = overrides.Visualization
	}
	return templates, nil
}

// BuildStatisticalTestPrompt creates the prompt asking the assistant to
// suggest statistical tests for an analyzed dataset.
func (t TemplateSet) BuildStatisticalTestPrompt(summary *models.TableSummary) string {
	var prompt strings.Builder

	prompt.WriteString("# Statistical Test Suggestions\n\n")
	prompt.WriteString(t.StatisticalTest)
	prompt.WriteString("\n\n")
	writeDataContext(&prompt, summary)

	return prompt.String()
}

// BuildVisualizationPrompt creates the prompt asking the assistant to improve
// a selected block of plotting code against an analyzed dataset.
func (t TemplateSet) BuildVisualizationPrompt(summary *models.TableSummary, selectedCode string) string {
	var prompt strings.Builder

	prompt.WriteString("# Improve This Plot\n\n")
	prompt.WriteString(t.Visualization)
	prompt.WriteString("\n\n")
	writeDataContext(&prompt, summary)

	if selectedCode != "" {
		prompt.WriteString("\n## Selected Code\n\n")
		prompt.WriteString("```\n")
		prompt.WriteString(selectedCode)
		if !strings.HasSuffix(selectedCode, "\n") {
			prompt.WriteString("\n")
		}
		prompt.WriteString("```\n")
	}

	return prompt.String()
}

func writeDataContext(prompt *strings.Builder, summary *models.TableSummary) {
	prompt.WriteString("## Data Context\n\n")
	if entity := SuggestEntityName(summary.Name); entity != "" {
		prompt.WriteString(fmt.Sprintf("Each row appears to describe: %s\n\n", entity))
	}
	prompt.WriteString(FormatForPrompt(summary))
}
