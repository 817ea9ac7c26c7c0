package handler

import (
	"html/template"
	"net/http"

	"github.com/fliklylike-cyber/Media-Grab/internal/model"
	"github.com/rs/zerolog/log"
)

type formatOption struct {
	Value model.Format
	Label string
}

type pageData struct {
	Formats []formatOption
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>MediaGrab</title>
    <style>
        :root { --bg: #121212; --card: #1e1e1e; --text: #e0e0e0; --accent: #4ea8de; --err: #ff4444; --ok: #4caf50; }
        body { background: var(--bg); color: var(--text); font-family: system-ui, sans-serif; display: grid; place-items: center; min-height: 100vh; margin: 0; }
        .container { background: var(--card); padding: 2rem; border-radius: 12px; box-shadow: 0 10px 30px rgba(0,0,0,0.5); width: 90%; max-width: 420px; text-align: center; }
        h1 { margin: 0 0 1rem; font-size: 1.5rem; color: var(--accent); }
        input, select { width: 100%; padding: 12px; margin: 8px 0; border: 1px solid #333; border-radius: 6px; background: #252525; color: #fff; box-sizing: border-box; outline: none; }
        input:focus { border-color: var(--accent); }
        button { width: 100%; padding: 12px; border: none; border-radius: 6px; background: var(--accent); color: white; font-weight: bold; cursor: pointer; }
        button:disabled { background: #555; cursor: not-allowed; }
        #message { margin-top: 16px; padding: 10px; border-radius: 6px; display: none; word-break: break-word; }
        #message.error { display: block; background: rgba(255,68,68,0.15); color: var(--err); }
        #message.success { display: block; background: rgba(76,175,80,0.15); color: var(--ok); }
        #message span { float: right; cursor: pointer; margin-left: 8px; }
        #spinner { display: none; margin-top: 16px; }
        #spinner.busy { display: block; }
    </style>
</head>
<body>
    <div class="container">
        <h1>MediaGrab</h1>
        <form id="grabForm">
            <input type="text" id="url" placeholder="Paste a video URL..." autofocus>
            <select id="format">
{{- range .Formats}}
                <option value="{{.Value}}">{{.Label}}</option>
{{- end}}
            </select>
            <button type="submit" id="btn">Download</button>
        </form>
        <div id="spinner">&#9203; Processing...</div>
        <div id="message"></div>
    </div>

    <script>
        const form = document.getElementById('grabForm'),
              urlInput = document.getElementById('url'),
              formatSel = document.getElementById('format'),
              btn = document.getElementById('btn'),
              spinner = document.getElementById('spinner'),
              msg = document.getElementById('message');

        let dismissTimer = null;

        function show(kind, text) {
            clearTimeout(dismissTimer);
            msg.className = kind;
            msg.innerHTML = text + '<span onclick="this.parentElement.className=\'\'">&times;</span>';
            if (kind === 'success') {
                dismissTimer = setTimeout(() => { msg.className = ''; }, 5000);
            }
        }

        function setBusy(busy) {
            urlInput.disabled = busy;
            formatSel.disabled = busy;
            btn.disabled = busy;
            spinner.className = busy ? 'busy' : '';
            if (!busy) urlInput.focus();
        }

        form.onsubmit = async (e) => {
            e.preventDefault();
            msg.className = '';
            setBusy(true);
            try {
                const resp = await fetch('/api/grab', {
                    method: 'POST',
                    headers: {'Content-Type': 'application/json'},
                    body: JSON.stringify({url: urlInput.value, format: formatSel.value})
                });
                const data = await resp.json();
                show(data.status === 'success' ? 'success' : 'error', data.message);
            } catch (err) {
                show('error', 'Request failed: ' + err.message);
            } finally {
                setBusy(false);
            }
        };
    </script>
</body>
</html>
`))

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Formats: []formatOption{
			{Value: model.FormatMP4, Label: model.FormatMP4.Label()},
			{Value: model.FormatMP3, Label: model.FormatMP3.Label()},
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("Failed to render page")
	}
}
