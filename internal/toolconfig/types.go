package toolconfig

// Well-known keys of the configuration file.
const (
	DefaultFileName = ".tool-config.json"

	ToolMaven  = "maven"
	ToolJava   = "java"
	ToolMySQL  = "mysql"
	ToolGitHub = "github"

	FieldPath      = "path"
	FieldJavacPath = "javac_path"

	EnvJavaHome  = "JAVA_HOME"
	EnvMavenHome = "MAVEN_HOME"
)

// Tool is a single tool record. It always carries FieldPath and may carry
// extra string fields such as FieldJavacPath.
type Tool map[string]string

// Config mirrors the layout of .tool-config.json.
type Config struct {
	Tools       map[string]Tool   `json:"tools" yaml:"tools"`
	Environment map[string]string `json:"environment" yaml:"environment"`
}

func (t Tool) clone() Tool {
	out := make(Tool, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

func (c Config) clone() Config {
	out := Config{
		Tools:       make(map[string]Tool, len(c.Tools)),
		Environment: make(map[string]string, len(c.Environment)),
	}
	for name, tool := range c.Tools {
		out.Tools[name] = tool.clone()
	}
	for name, value := range c.Environment {
		out.Environment[name] = value
	}
	return out
}
