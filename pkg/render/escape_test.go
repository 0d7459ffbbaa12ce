package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := map[string]string{
		"":                                "",
		"Glazed & sprinkled":              "Glazed &amp; sprinkled",
		"1 < 2 > 0":                       "1 &lt; 2 &gt; 0",
		`the "donut" button`:              "the &quot;donut&quot; button",
		"it's fresh":                      "it&#39;s fresh",
		"<script>alert('x')</script>":     "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;",
		"ドーナツ 🍩":                          "ドーナツ 🍩",
		"bg-donut-500 hover:bg-donut-600": "bg-donut-500 hover:bg-donut-600",
	}
	for in, want := range tests {
		if got := escapeHTML(in); got != want {
			t.Errorf("escapeHTML(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := map[string]string{
		"Search...":            "Search...",
		`"><img src=x>`:        "&quot;&gt;&lt;img src=x&gt;",
		"a&b":                  "a&amp;b",
		"line1\nline2":         "line1&#10;line2",
		"a\r\tb":               "a&#13;&#9;b",
		`<>&"'` + "\n\r\t":     "&lt;&gt;&amp;&quot;&#39;&#10;&#13;&#9;",
		"w-full focus:ring-2 ": "w-full focus:ring-2 ",
	}
	for in, want := range tests {
		if got := escapeAttr(in); got != want {
			t.Errorf("escapeAttr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeScript(t *testing.T) {
	got := escapeScript(`ws.onmessage = () => "</script><b>";`)
	want := `ws.onmessage = () => "<\/script><b>";`
	if got != want {
		t.Errorf("escapeScript() = %q, want %q", got, want)
	}
}
