package athletica

// loginTestScript runs after the login call in the consuming tool. It stores
// the token and its claims in the environment and checks the decoded JWT
// payload shape. The signature is never verified.
var loginTestScript = []string{
	"var json = pm.response.json();",
	"pm.test(\"Status code is 200\", function () {",
	"    pm.response.to.have.status(200);",
	"});",
	"if (json.token) {",
	"    pm.environment.set(\"token\", json.token);",
	"}",
	"if (json.roles) {",
	"    pm.environment.set(\"roles\", JSON.stringify(json.roles));",
	"}",
	"if (json.scope) {",
	"    pm.environment.set(\"scope\", json.scope);",
	"}",
	"if (json.user_id) {",
	"    pm.environment.set(\"user_id\", json.user_id);",
	"} else if (json.id) {",
	"    pm.environment.set(\"user_id\", json.id);",
	"}",
	"// Decode JWT to verify claims",
	"var token = json.token;",
	"if (token) {",
	"    var base64Url = token.split('.')[1];",
	"    var base64 = base64Url.replace(/-/g, '+').replace(/_/g, '/');",
	"    var jsonPayload = decodeURIComponent(atob(base64).split('').map(function(c) {",
	"        return '%' + ('00' + c.charCodeAt(0).toString(16)).slice(-2);",
	"    }).join(''));",
	"    var payload = JSON.parse(jsonPayload);",
	"    if (payload.roles) {",
	"        pm.expect(payload.roles).to.be.an('array');",
	"    }",
	"    if (payload.scope) {",
	"        pm.expect(payload.scope).to.be.a('string');",
	"    }",
	"}",
}

// LoginTestScript returns a fresh copy of the login post-response script.
func LoginTestScript() []string {
	return append([]string{}, loginTestScript...)
}
