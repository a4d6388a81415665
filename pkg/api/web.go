package api

var tmpl = `
<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Descargas Multimedia</title>
    <style>
        :root { --bg: #121212; --card: #1e1e1e; --text: #e0e0e0; --accent: #ff4444; }
        body { background: var(--bg); color: var(--text); font-family: system-ui, sans-serif; display: grid; place-items: center; min-height: 100vh; margin: 0; }
        .container { background: var(--card); padding: 2rem; border-radius: 12px; box-shadow: 0 10px 30px rgba(0,0,0,0.5); width: 90%; max-width: 420px; text-align: center; }
        h1 { margin: 0 0 1rem; font-size: 1.5rem; color: var(--accent); }
        input, select { width: 100%; padding: 12px; margin: 10px 0; border: 1px solid #333; border-radius: 6px; background: #252525; color: #fff; box-sizing: border-box; outline: none; }
        input:focus, select:focus { border-color: var(--accent); }
        button { width: 100%; padding: 12px; border: none; border-radius: 6px; background: var(--accent); color: white; font-weight: bold; cursor: pointer; transition: 0.2s; }
        button:hover { opacity: 0.9; }
        button:disabled { background: #555; cursor: not-allowed; }
        #result { margin-top: 20px; line-height: 1.6; word-break: break-word; }
        a { display: inline-block; margin: 5px; color: #4ea8de; text-decoration: none; border: 1px solid #4ea8de; padding: 5px 10px; border-radius: 4px; font-size: 0.9rem; }
        a:hover { background: #4ea8de; color: #fff; }
        .error { color: var(--accent); font-size: 0.9rem; }
        .title { font-weight: bold; margin-bottom: 10px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Descargas Multimedia</h1>
        <form id="dlForm">
            <select id="platform">
                {{range .}}<option value="{{.Name}}">{{.Label}}</option>
                {{end}}
            </select>
            <input type="url" id="url" placeholder="Pega el enlace..." required>
            <button type="submit" id="btn">Obtener enlaces</button>
        </form>
        <div id="result"></div>
    </div>

    <script>
        const f = document.getElementById('dlForm'),
              r = document.getElementById('result'),
              b = document.getElementById('btn');

        const links = (d) => {
            let list = [];
            if (d.descarga) list = [d.descarga.enlace];
            else if (d.enlaces && d.enlaces.video_original) list = [d.enlaces.video_original, d.enlaces.video_hd];
            else if (Array.isArray(d.enlaces)) list = d.enlaces.map(e => (e && typeof e === 'object') ? (e.url || e.hd || e.sd) : e);
            else if (d.enlaces && typeof d.enlaces === 'object') list = Object.values(d.enlaces);
            return list.filter(safeURL);
        };

        // Only http(s) links become anchors.
        const safeURL = (u) => {
            if (typeof u !== 'string') return false;
            try {
                const parsed = new URL(u);
                return parsed.protocol === 'http:' || parsed.protocol === 'https:';
            } catch (_) {
                return false;
            }
        };

        const node = (tag, text, cls) => {
            const el = document.createElement(tag);
            el.textContent = text;
            if (cls) el.className = cls;
            return el;
        };

        f.onsubmit = async (e) => {
            e.preventDefault();
            b.disabled = true;
            r.replaceChildren(node('div', '⏳ Procesando...'));

            try {
                const p = document.getElementById('platform').value;
                const u = encodeURIComponent(document.getElementById('url').value);
                const resp = await fetch('/api/' + p + '?url=' + u);
                const data = await resp.json();

                if (!data['éxito']) throw new Error(data.mensaje);
                const title = node('div', String(data['título'] || data.plataforma), 'title');
                const anchors = links(data).map(l => {
                    const a = node('a', '📥 Descargar');
                    a.href = l;
                    a.target = '_blank';
                    a.rel = 'noopener noreferrer';
                    return a;
                });
                r.replaceChildren(title, ...anchors);

            } catch (err) {
                r.replaceChildren(node('div', '❌ ' + err.message, 'error'));
            } finally {
                b.disabled = false;
            }
        };
    </script>
</body>
</html>
`
